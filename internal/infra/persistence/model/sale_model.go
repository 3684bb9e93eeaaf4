package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table.
type SaleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Rating     float64   `gorm:"not null"`
	Total      float64   `gorm:"not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *CustomerModel      `gorm:"foreignKey:CustomerID"`
	Items    []SaleLineItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleLineItemModel mirrors the 'sale_line_items' table, linking one product
// and a quantity to its parent sale.
type SaleLineItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (SaleLineItemModel) TableName() string {
	return "sale_line_items"
}
