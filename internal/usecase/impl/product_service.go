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

// productService implements the ProductUsecase interface. Category references
// are verified against the acting user's own categories on every write.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.ProductCategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.ProductCategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns every product owned by userID, oldest first.
func (srv *productService) ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct returns one product scoped to its owner.
func (srv *productService) GetProduct(ctx context.Context, id, userID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct persists a new product owned by userID after verifying the
// referenced category belongs to the same user.
func (srv *productService) CreateProduct(ctx context.Context, userID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.verifyCategoryOwnership(ctx, input.CategoryID, userID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       input.Name,
		Price:      input.Price,
		Quantity:   input.Quantity,
		Image:      input.Image,
		CategoryID: input.CategoryID,
		UserID:     userID,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID), slog.Any("userID", userID))

	return product, nil
}

// UpdateProduct merges the given fields into the stored product and saves the
// result. A changed category reference is re-verified for ownership.
func (srv *productService) UpdateProduct(ctx context.Context, id, userID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if input.CategoryID != nil {
		if err := srv.verifyCategoryOwnership(ctx, *input.CategoryID, userID); err != nil {
			return nil, err
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	return product, nil
}

// DeleteProduct removes one product scoped to its owner.
func (srv *productService) DeleteProduct(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id), slog.Any("userID", userID))

	return nil
}

// verifyCategoryOwnership confirms the category exists and belongs to userID.
// A foreign or missing category reads as category-not-found.
func (srv *productService) verifyCategoryOwnership(ctx context.Context, categoryID, userID uuid.UUID) error {
	_, err := srv.categoryRepo.FindByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to verify category ownership")
	}

	return nil
}
