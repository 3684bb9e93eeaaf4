package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100)"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Authentications []AuthenticationModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Customers       []CustomerModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Categories      []ProductCategoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Products        []ProductModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sales           []SaleModel            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
