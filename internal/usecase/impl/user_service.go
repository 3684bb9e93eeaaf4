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

// userService implements the UserUsecase interface. Account operations are
// strictly self-service: the target id must match the acting user's id, and a
// mismatch reads the same as a missing row.
type userService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser returns the acting user's own account.
func (srv *userService) GetUser(ctx context.Context, id, actingUserID uuid.UUID) (*entity.User, error) {
	if id != actingUserID {
		return nil, domainerrors.ErrUserNotFound
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies a partial update to the acting user's own account.
func (srv *userService) UpdateUser(ctx context.Context, id, actingUserID uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	if id != actingUserID {
		return nil, domainerrors.ErrUserNotFound
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}

	emailChanged := input.Email != nil && *input.Email != user.Email
	if input.Email != nil {
		user.Email = *input.Email
	}

	// An email change must also re-key the email credential, or the new
	// address could not log in. Both writes commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Update(ctx, user); err != nil {
			return err
		}

		if emailChanged {
			err := repoFactory.AuthRepo().UpdateProviderUserID(ctx, user.ID, entity.ProviderTypeEmail, user.Email)
			// Accounts created through Google sign-in carry no email credential.
			if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Warn("Failed to update user", slog.Any("userID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User updated", slog.Any("userID", id))

	return user, nil
}

// DeleteUser removes the acting user's own account. Owned resources cascade
// at the database level.
func (srv *userService) DeleteUser(ctx context.Context, id, actingUserID uuid.UUID) error {
	if id != actingUserID {
		return domainerrors.ErrUserNotFound
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}
