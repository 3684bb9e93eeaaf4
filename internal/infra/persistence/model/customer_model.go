package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressColumns flattens the optional customer address into prefixed columns.
type AddressColumns struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	Country string `gorm:"type:varchar(100)"`
	Zip     string `gorm:"type:varchar(20)"`
}

// CustomerModel mirrors the 'customers' table. Every row carries its owning
// user id; all queries conjoin it with the primary key.
type CustomerModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string         `gorm:"type:varchar(100);not null"`
	Email     string         `gorm:"type:varchar(255);not null"`
	Phone     string         `gorm:"type:varchar(30);not null"`
	Notes     string         `gorm:"type:text"`
	Address   AddressColumns `gorm:"embedded;embeddedPrefix:address_"`
	Status    string         `gorm:"type:varchar(10);not null;default:ACTIVE"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
