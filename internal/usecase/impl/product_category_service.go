package impl

import (
	"context"
	"log/slog"

	deliverycontext "sellbase/internal/delivery/context"
	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productCategoryService implements the ProductCategoryUsecase interface.
type productCategoryService struct {
	categoryRepo repository.ProductCategoryRepository
	logger       *slog.Logger
}

// ProductCategoryServiceParams holds dependencies for productCategoryService, injected by Fx.
type ProductCategoryServiceParams struct {
	fx.In

	CategoryRepo repository.ProductCategoryRepository
	Logger       *slog.Logger
}

// NewProductCategoryService is the constructor for productCategoryService.
func NewProductCategoryService(params ProductCategoryServiceParams) usecase.ProductCategoryUsecase {
	return &productCategoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productCategoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns every category owned by userID, oldest first.
func (srv *productCategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*entity.ProductCategory, error) {
	categories, err := srv.categoryRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product categories")
	}

	return categories, nil
}

// GetCategory returns one category scoped to its owner.
func (srv *productCategoryService) GetCategory(ctx context.Context, id, userID uuid.UUID) (*entity.ProductCategory, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find product category")
	}

	return category, nil
}

// CreateCategory persists a new category owned by userID.
func (srv *productCategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, input usecase.CreateCategoryInput) (*entity.ProductCategory, error) {
	category := &entity.ProductCategory{
		Name:   input.Name,
		UserID: userID,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Warn("Failed to create product category", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product category created", slog.Any("categoryID", category.ID), slog.Any("userID", userID))

	return category, nil
}

// UpdateCategory merges the given fields into the stored category and saves
// the result.
func (srv *productCategoryService) UpdateCategory(ctx context.Context, id, userID uuid.UUID, input usecase.UpdateCategoryInput) (*entity.ProductCategory, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find product category")
	}

	if input.Name != nil {
		category.Name = *input.Name
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		srv.log(ctx).Warn("Failed to update product category", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, err
	}

	return category, nil
}

// DeleteCategory removes one category scoped to its owner.
func (srv *productCategoryService) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete product category")
	}

	srv.log(ctx).Debug("Product category deleted", slog.Any("categoryID", id), slog.Any("userID", userID))

	return nil
}
