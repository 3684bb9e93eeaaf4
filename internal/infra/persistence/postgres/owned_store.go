// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownedStore is the single implementation of the owner-scoped repository
// contract. Every resource table that carries a user_id column reuses it by
// embedding; only the entity/model mappers differ per resource.
//
// Each query conjoins the primary key with the acting user's id, so a row
// owned by someone else is indistinguishable from a missing row.
type ownedStore[E any, M any] struct {
	db       *gorm.DB
	label    string
	ownerOf  func(*E) uuid.UUID
	toModel  func(*E) *M
	toDomain func(*M) *E
}

func newOwnedStore[E any, M any](
	db *gorm.DB,
	label string,
	ownerOf func(*E) uuid.UUID,
	toModel func(*E) *M,
	toDomain func(*M) *E,
) *ownedStore[E, M] {
	return &ownedStore[E, M]{
		db:       db,
		label:    label,
		ownerOf:  ownerOf,
		toModel:  toModel,
		toDomain: toDomain,
	}
}

// ListByOwner returns every row owned by userID, oldest first.
func (s *ownedStore[E, M]) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*E, error) {
	var rows []*M
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s records", s.label)
	}

	records := make([]*E, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.toDomain(row))
	}

	return records, nil
}

// FindByID retrieves a single row scoped to its owner.
func (s *ownedStore[E, M]) FindByID(ctx context.Context, id, userID uuid.UUID) (*E, error) {
	row := new(M)
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", s.label)
	}

	return s.toDomain(row), nil
}

// Create persists a new row and copies the generated id and timestamps back
// into the entity.
func (s *ownedStore[E, M]) Create(ctx context.Context, record *E) error {
	row := s.toModel(record)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage(s.label + " already exists")
		}
		if isForeignKeyConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid "+s.label+" data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+s.label)
	}

	*record = *s.toDomain(row)

	return nil
}

// Update saves the full merged record. The extra user_id condition keeps the
// write inside the owner's partition even though the primary key alone would
// identify the row.
func (s *ownedStore[E, M]) Update(ctx context.Context, record *E) error {
	row := s.toModel(record)
	res := s.db.WithContext(ctx).
		Where("user_id = ?", s.ownerOf(record)).
		Save(row)
	if res.Error != nil {
		if isUniqueConstraintViolation(res.Error) {
			return domainerrors.ErrConflict.WrapMessage(s.label + " already exists")
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update "+s.label)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	*record = *s.toDomain(row)

	return nil
}

// Delete removes the row scoped to its owner.
func (s *ownedStore[E, M]) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(new(M))
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete "+s.label)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
