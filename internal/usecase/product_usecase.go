package usecase

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product. The
// referenced category must belong to the same user.
type CreateProductInput struct {
	Name       string
	Price      float64
	Quantity   int
	Image      string
	CategoryID uuid.UUID
}

// UpdateProductInput carries a partial product update. Nil fields are left
// untouched.
type UpdateProductInput struct {
	Name       *string
	Price      *float64
	Quantity   *int
	Image      *string
	CategoryID *uuid.UUID
}

// ProductUsecase defines owner-scoped product operations.
type ProductUsecase interface {
	ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, userID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id, userID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id, userID uuid.UUID) error
}
