package postgres

import (
	"context"

	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	"sellbase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface. The shared
// owner-scoped store covers the base operations; line-item writes and the
// detailed listing are layered on top.
type saleRepository struct {
	*ownedStore[entity.Sale, model.SaleModel]

	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		ownedStore: newOwnedStore(db, "sale", saleOwner, fromSaleDomain, toSaleDomain),
		db:         db,
	}
}

func saleOwner(data *entity.Sale) uuid.UUID {
	return data.UserID
}

// FindByID retrieves a single sale scoped to its owner, with the customer
// summary and line items (including product summaries) attached.
func (repo *saleRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error) {
	saleM := new(model.SaleModel)
	err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(saleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(saleM), nil
}

// ListDetailed returns the owner's sales with customer and product summaries
// attached, oldest first.
func (repo *saleRepository) ListDetailed(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error) {
	var rows []*model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, toSaleDomain(row))
	}

	return sales, nil
}

// CreateLineItems bulk-inserts the line items of a sale and copies the
// generated ids back. Callers pair this with Create inside one transaction.
func (repo *saleRepository) CreateLineItems(ctx context.Context, saleID uuid.UUID, items []*entity.SaleLineItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]model.SaleLineItemModel, 0, len(items))
	for _, item := range items {
		rows = append(rows, model.SaleLineItemModel{
			SaleID:    saleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid sale line item reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale line items")
	}

	for i := range rows {
		items[i].ID = rows[i].ID
		items[i].SaleID = rows[i].SaleID
	}

	return nil
}

// ReplaceLineItems deletes a sale's line items and inserts the given set.
func (repo *saleRepository) ReplaceLineItems(ctx context.Context, saleID uuid.UUID, items []*entity.SaleLineItem) error {
	err := repo.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Delete(new(model.SaleLineItemModel)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear sale line items")
	}

	return repo.CreateLineItems(ctx, saleID, items)
}

// toSaleDomain converts a GORM SaleModel to a domain Sale entity, carrying
// over whichever associations the query preloaded.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	sale := &entity.Sale{
		ID:         data.ID,
		Rating:     data.Rating,
		Total:      data.Total,
		CustomerID: data.CustomerID,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Customer != nil {
		sale.Customer = &entity.CustomerSummary{
			ID:   data.Customer.ID,
			Name: data.Customer.Name,
		}
	}

	if len(data.Items) > 0 {
		sale.Items = make([]*entity.SaleLineItem, 0, len(data.Items))
		for _, itemM := range data.Items {
			item := &entity.SaleLineItem{
				ID:        itemM.ID,
				SaleID:    itemM.SaleID,
				ProductID: itemM.ProductID,
				Quantity:  itemM.Quantity,
			}
			if itemM.Product != nil {
				item.Product = &entity.ProductSummary{
					ID:    itemM.Product.ID,
					Name:  itemM.Product.Name,
					Price: itemM.Product.Price,
				}
			}
			sale.Items = append(sale.Items, item)
		}
	}

	return sale
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel. Line
// items are written separately via CreateLineItems/ReplaceLineItems, so the
// association stays empty here.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	return &model.SaleModel{
		ID:         data.ID,
		Rating:     data.Rating,
		Total:      data.Total,
		CustomerID: data.CustomerID,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
	}
}
