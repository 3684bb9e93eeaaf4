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

// saleService implements the SaleUsecase interface. A sale and its line items
// are written atomically: either the whole sale lands or nothing does.
type saleService struct {
	txManager    repository.TransactionManager
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// SaleServiceParams holds dependencies for saleService, injected by Fx.
type SaleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SaleRepo     repository.SaleRepository
	CustomerRepo repository.CustomerRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(params SaleServiceParams) usecase.SaleUsecase {
	return &saleService{
		txManager:    params.TxManager,
		saleRepo:     params.SaleRepo,
		customerRepo: params.CustomerRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSales returns every sale owned by userID with customer and product
// summaries attached, oldest first.
func (srv *saleService) ListSales(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error) {
	sales, err := srv.saleRepo.ListDetailed(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	return sales, nil
}

// GetSale returns one sale scoped to its owner, with its customer summary and
// line items attached.
func (srv *saleService) GetSale(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	return sale, nil
}

// CreateSale records a sale with its line items in one transaction. The
// referenced customer and every referenced product must belong to userID.
func (srv *saleService) CreateSale(ctx context.Context, userID uuid.UUID, input usecase.CreateSaleInput) (*entity.Sale, error) {
	if err := srv.verifyCustomerOwnership(ctx, input.CustomerID, userID); err != nil {
		return nil, err
	}
	if err := srv.verifyProductOwnership(ctx, input.Items, userID); err != nil {
		return nil, err
	}

	sale := &entity.Sale{
		Rating:     input.Rating,
		Total:      input.Total,
		CustomerID: input.CustomerID,
		UserID:     userID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		return saleRepo.CreateLineItems(ctx, sale.ID, toLineItemEntities(input.Items))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create sale", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Sale created", slog.Any("saleID", sale.ID), slog.Any("userID", userID))

	// Re-read so the response carries the customer and product summaries.
	return srv.GetSale(ctx, sale.ID, userID)
}

// UpdateSale merges the given fields into the stored sale and saves the
// result. A non-nil item set replaces the stored line items; sale row and
// items change in one transaction.
func (srv *saleService) UpdateSale(ctx context.Context, id, userID uuid.UUID, input usecase.UpdateSaleInput) (*entity.Sale, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	if input.CustomerID != nil {
		if err := srv.verifyCustomerOwnership(ctx, *input.CustomerID, userID); err != nil {
			return nil, err
		}
		sale.CustomerID = *input.CustomerID
	}
	if input.Rating != nil {
		sale.Rating = *input.Rating
	}
	if input.Total != nil {
		sale.Total = *input.Total
	}
	if input.Items != nil {
		if err := srv.verifyProductOwnership(ctx, input.Items, userID); err != nil {
			return nil, err
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saleRepo := repoFactory.SaleRepo()

		if err := saleRepo.Update(ctx, sale); err != nil {
			return err
		}

		if input.Items != nil {
			return saleRepo.ReplaceLineItems(ctx, sale.ID, toLineItemEntities(input.Items))
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrSaleNotFound
		}

		srv.log(ctx).Warn("Failed to update sale", slog.Any("saleID", id), slog.Any("error", err))

		return nil, err
	}

	return srv.GetSale(ctx, id, userID)
}

// DeleteSale removes one sale scoped to its owner. Line items cascade at the
// database level.
func (srv *saleService) DeleteSale(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.saleRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrSaleNotFound
		}

		return errors.Wrap(err, "failed to delete sale")
	}

	srv.log(ctx).Debug("Sale deleted", slog.Any("saleID", id), slog.Any("userID", userID))

	return nil
}

// verifyCustomerOwnership confirms the customer exists and belongs to userID.
func (srv *saleService) verifyCustomerOwnership(ctx context.Context, customerID, userID uuid.UUID) error {
	_, err := srv.customerRepo.FindByID(ctx, customerID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to verify customer ownership")
	}

	return nil
}

// verifyProductOwnership confirms every referenced product belongs to userID.
func (srv *saleService) verifyProductOwnership(ctx context.Context, items []usecase.SaleItemInput, userID uuid.UUID) error {
	for _, item := range items {
		_, err := srv.productRepo.FindByID(ctx, item.ProductID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to verify product ownership")
		}
	}

	return nil
}

func toLineItemEntities(items []usecase.SaleItemInput) []*entity.SaleLineItem {
	lineItems := make([]*entity.SaleLineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, &entity.SaleLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return lineItems
}
