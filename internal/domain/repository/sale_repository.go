package repository

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository persists sales with owner scoping on every operation.
// On top of the shared owner-scoped capability it adds line-item writes and
// the detailed listing that joins customer and product summaries.
type SaleRepository interface {
	Owned[entity.Sale]

	// CreateLineItems bulk-inserts the line items of a sale. Callers run this
	// together with Create inside one transaction.
	CreateLineItems(ctx context.Context, saleID uuid.UUID, items []*entity.SaleLineItem) error

	// ReplaceLineItems deletes a sale's line items and inserts the given set.
	ReplaceLineItems(ctx context.Context, saleID uuid.UUID, items []*entity.SaleLineItem) error

	// ListDetailed returns the owner's sales with customer and product
	// summaries attached, ordered by creation time ascending. Line items are
	// scoped through the owner's sale-id set.
	ListDetailed(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error)
}
