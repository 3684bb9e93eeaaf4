// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale records a completed sale to a customer, owned by the selling user.
// A sale carries one or more line items; the sale row and its items are
// written inside a single transaction so an item insert failure can never
// leave an orphaned sale behind.
type Sale struct {
	ID         uuid.UUID        `json:"id"`
	Rating     float64          `json:"rating"` // Customer satisfaction, 0 through 5.
	Total      float64          `json:"total"`  // Sale total, never negative.
	CustomerID uuid.UUID        `json:"customerId"`
	UserID     uuid.UUID        `json:"userId"`
	Items      []*SaleLineItem  `json:"products,omitempty"`
	Customer   *CustomerSummary `json:"customer,omitempty"` // Populated on reads that join the customer.
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// SaleLineItem links one product and a quantity to its parent sale.
type SaleLineItem struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"salesId"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`         // At least 1.
	Product   *ProductSummary `json:"product,omitempty"` // Populated on reads that join the product.
}

// CustomerSummary is the trimmed customer projection attached to sale reads.
type CustomerSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProductSummary is the trimmed product projection attached to sale line items.
type ProductSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}
