package usecase

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines the data required to create a product category.
type CreateCategoryInput struct {
	Name string
}

// UpdateCategoryInput carries a partial category update. Nil fields are left
// untouched.
type UpdateCategoryInput struct {
	Name *string
}

// ProductCategoryUsecase defines owner-scoped product category operations.
type ProductCategoryUsecase interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.ProductCategory, error)
	GetCategory(ctx context.Context, id, userID uuid.UUID) (*entity.ProductCategory, error)
	CreateCategory(ctx context.Context, userID uuid.UUID, input CreateCategoryInput) (*entity.ProductCategory, error)
	UpdateCategory(ctx context.Context, id, userID uuid.UUID, input UpdateCategoryInput) (*entity.ProductCategory, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}
