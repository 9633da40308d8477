package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is the aggregate root for the product cluster. Unlike User.Email,
// the product name carries no store-level uniqueness; duplicate detection is
// an application-level existence check only.
type Product struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"size:200;not null"`
	Description     string    `gorm:"not null"`
	QuantityInStock int       `gorm:"not null"`

	CategoryID     uint
	Category       *Category
	ManufacturerID uint
	Manufacturer   *Manufacturer
	PriceID        uint
	Price          *Price
	ProductionID   uint
	Production     *ProductionInfo
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:200;not null"`
}

type Manufacturer struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:150;not null"`
}

// Price records the monetary amount and the date it was set.
type Price struct {
	ID        uint    `gorm:"primaryKey"`
	Amount    float64 `gorm:"type:decimal(10,2);not null"`
	PriceDate datatypes.Date
}

type ProductionInfo struct {
	ID             uint `gorm:"primaryKey"`
	ProductionDate datatypes.Date
}
