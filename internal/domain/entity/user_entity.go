package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the aggregate root for the user cluster. It references one row of
// each dependent record type by generated key. The schema allows a dependent
// row to be shared by several users, but the application always mints fresh
// dependent rows per user.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"size:200;uniqueIndex;not null"`
	Password string    `gorm:"not null"` // keyed hash, never plaintext

	ProfileID uint `gorm:"not null"`
	Profile   *Profile
	AddressID uint
	Address   *Address
	RoleID    uint `gorm:"not null"`
	Role      *Role
	PhoneID   uint
	Phone     *Phone
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile holds the user's name.
type Profile struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
}

// Address fields are all optional.
type Address struct {
	ID         uint   `gorm:"primaryKey"`
	StreetName string `gorm:"size:200"`
	PostalCode string `gorm:"size:20"`
	City       string `gorm:"size:100"`
}

// Role names are unique store-wide and stored upper-cased.
type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}

type Phone struct {
	ID     uint   `gorm:"primaryKey"`
	Number string `gorm:"size:50"`
}
