// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "sellbase/internal/delivery/context"
	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	"sellbase/internal/domain/service"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	googleOAuth  service.OAuthService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	GoogleOAuth  service.OAuthService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		googleOAuth:  params.GoogleOAuth,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with an email/password credential. The user
// row and the credential row are written in one transaction so a failure
// leaves no half-registered account behind.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to check existing authentication")
		}

		user := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return err
		}

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies an email/password credential and issues a bearer token.
// An unknown email reads as a missing user; a wrong password is rejected as
// invalid credentials.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.TokenOutput, error) {
	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", authRecord.UserID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(authRecord.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", authRecord.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", authRecord.UserID))

	return &usecase.TokenOutput{Token: token}, nil
}

// GoogleAuth exchanges an OAuth authorization code for an identity and issues
// a bearer token. First-time identities get a user row created (or linked to
// an existing account with the same email) together with the credential row.
func (srv *authService) GoogleAuth(ctx context.Context, input usecase.GoogleAuthInput) (*usecase.TokenOutput, error) {
	identity, err := srv.googleOAuth.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, err
	}

	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, identity.Subject)
		if err == nil {
			userID = authRecord.UserID

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find google authentication")
		}

		user, err := userRepo.FindByEmail(ctx, identity.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{
				Name:  identity.Name,
				Email: identity.Email,
			}
			if err := userRepo.Create(ctx, user); err != nil {
				return err
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		auth := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: identity.Subject,
		}
		if err := authRepo.CreateAuthentication(ctx, auth); err != nil {
			return err
		}

		userID = user.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Google sign-in failed", slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.IssueToken(userID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Google sign-in completed", slog.Any("userID", userID))

	return &usecase.TokenOutput{Token: token}, nil
}
