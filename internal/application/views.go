package application

import (
	"time"

	"github.com/google/uuid"
)

// UserView is the flat external shape of the user aggregate: one struct in,
// one struct out, with the normalized record split hidden behind the service.
type UserView struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,pwd"`
	RoleName    string `validate:"required"`
	PhoneNumber string
	StreetName  string
	PostalCode  string
	City        string
}

// ProductView is the flat external shape of the product aggregate. ID is
// populated on reads and identifies the root for updates.
type ProductView struct {
	ID               uuid.UUID
	Name             string `validate:"required"`
	Description      string
	QuantityInStock  int `validate:"gte=0"`
	ProductionDate   time.Time
	CategoryName     string  `validate:"required"`
	ManufacturerName string  `validate:"required"`
	Price            float64 `validate:"gte=0"`
}
