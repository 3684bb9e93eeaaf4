package usecase

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateUserInput carries the fields a user may change on their own account.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserUsecase defines self-service account operations. Every operation takes
// both the target id and the acting user's id; a mismatch is reported as not
// found, never as forbidden.
type UserUsecase interface {
	GetUser(ctx context.Context, id, actingUserID uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, id, actingUserID uuid.UUID, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id, actingUserID uuid.UUID) error
}
