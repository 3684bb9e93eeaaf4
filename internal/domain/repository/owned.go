// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"sellbase/internal/errors"

	"github.com/google/uuid"
)

// ErrNotFound is the domain-specific error returned by owner-scoped lookups
// when a row is absent or owned by a different user. Both cases are
// deliberately indistinguishable so that existence never leaks across tenants.
var ErrNotFound = errors.New("record not found")

// Owned is the owner-scoped repository capability shared by every resource
// the system stores on behalf of a user. Each operation conjoins the row's
// primary key with the acting user's ID, so ownership is enforced at the
// data-access boundary rather than in each caller.
type Owned[E any] interface {
	// ListByOwner returns every row owned by userID, ordered by creation time ascending.
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*E, error)

	// FindByID retrieves a single row by primary key scoped to its owner.
	// Returns ErrNotFound for missing rows and for rows owned by someone else.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*E, error)

	// Create persists a new row. The ownership link must already be set on the entity.
	Create(ctx context.Context, record *E) error

	// Update persists the full merged record, scoped to its owner.
	Update(ctx context.Context, record *E) error

	// Delete removes the row scoped to its owner. Returns ErrNotFound when
	// nothing was deleted.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
