package usecase

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleItemInput links one product and a quantity to a sale.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput defines the data required to record a sale. At least one
// item is required.
type CreateSaleInput struct {
	Rating     float64
	Total      float64
	CustomerID uuid.UUID
	Items      []SaleItemInput
}

// UpdateSaleInput carries a partial sale update. Nil fields are left
// untouched; a non-nil Items slice replaces the stored line items wholesale.
type UpdateSaleInput struct {
	Rating     *float64
	Total      *float64
	CustomerID *uuid.UUID
	Items      []SaleItemInput
}

// SaleUsecase defines owner-scoped sale operations.
type SaleUsecase interface {
	ListSales(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error)
	GetSale(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error)
	CreateSale(ctx context.Context, userID uuid.UUID, input CreateSaleInput) (*entity.Sale, error)
	UpdateSale(ctx context.Context, id, userID uuid.UUID, input UpdateSaleInput) (*entity.Sale, error)
	DeleteSale(ctx context.Context, id, userID uuid.UUID) error
}
