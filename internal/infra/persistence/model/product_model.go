package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductCategoryModel mirrors the 'product_categories' table.
type ProductCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}

// ProductModel mirrors the 'products' table. CategoryID references a category
// owned by the same user; the service layer verifies that on every write.
type ProductModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Price      float64   `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
	Image      string    `gorm:"type:text"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
