package impl

import (
	"context"
	"testing"
	"time"

	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	"sellbase/internal/domain/service"
	mockRepo "sellbase/internal/mocks/repository"
	mockSvc "sellbase/internal/mocks/service"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (
	usecase.AuthUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockUserRepository,
	*mockRepo.MockAuthRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
	*mockSvc.MockOAuthService,
) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthService(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		AuthRepo:     authRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		GoogleOAuth:  oauthService,
		Logger:       testLogger(),
	})

	return svc, txManager, userRepo, authRepo, hasher, tokenService, oauthService
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, txManager, userRepo, authRepo, hasher, _, _ := newAuthServiceForTest(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()

	hasher.EXPECT().Hash("12345678").Return("$2a$10$hash", nil)

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@x.com").
		Return(nil, repository.ErrAuthNotFound)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
			user.CreatedAt = time.Now()
		}).
		Return(nil)

	authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "ana@x.com", auth.ProviderUserID)
			assert.Equal(t, "$2a$10$hash", auth.PasswordHash)
		}).
		Return(nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "12345678",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@x.com", out.User.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, txManager, userRepo, authRepo, hasher, _, _ := newAuthServiceForTest(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()

	hasher.EXPECT().Hash("12345678").Return("$2a$10$hash", nil)

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@x.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "12345678",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	svc, _, _, _, hasher, _, _ := newAuthServiceForTest(t)

	hasher.EXPECT().Hash("12345678").Return("", assert.AnError)

	out, err := svc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "12345678",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _, authRepo, hasher, tokenService, _ := newAuthServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@x.com").
		Return(&entity.Authentication{
			UserID:         userID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: "ana@x.com",
			PasswordHash:   "$2a$10$hash",
		}, nil)

	hasher.EXPECT().Check("12345678", "$2a$10$hash").Return(true)
	tokenService.EXPECT().IssueToken(userID).Return("signed.jwt.token", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@x.com", Password: "12345678"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "signed.jwt.token", out.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _, authRepo, _, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@x.com").
		Return(nil, repository.ErrAuthNotFound)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@x.com", Password: "12345678"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, authRepo, hasher, _, _ := newAuthServiceForTest(t)

	ctx := context.Background()

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@x.com").
		Return(&entity.Authentication{
			UserID:       uuid.New(),
			PasswordHash: "$2a$10$hash",
		}, nil)

	hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "ana@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleAuth_ExistingIdentity(t *testing.T) {
	svc, txManager, userRepo, authRepo, _, tokenService, oauthService := newAuthServiceForTest(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()

	oauthService.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.OAuthIdentity{Subject: "google-sub-1", Email: "ana@x.com", Name: "Ana"}, nil)

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle}, nil)

	tokenService.EXPECT().IssueToken(userID).Return("signed.jwt.token", nil)

	out, err := svc.GoogleAuth(ctx, usecase.GoogleAuthInput{Code: "auth-code"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
}

func TestAuthService_GoogleAuth_FirstSignInCreatesUser(t *testing.T) {
	svc, txManager, userRepo, authRepo, _, tokenService, oauthService := newAuthServiceForTest(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()

	oauthService.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.OAuthIdentity{Subject: "google-sub-1", Email: "ana@x.com", Name: "Ana"}, nil)

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrAuthNotFound)

	userRepo.EXPECT().
		FindByEmail(ctx, "ana@x.com").
		Return(nil, repository.ErrUserNotFound)

	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, entity.ProviderTypeGoogle, auth.Provider)
			assert.Equal(t, "google-sub-1", auth.ProviderUserID)
			assert.Empty(t, auth.PasswordHash)
		}).
		Return(nil)

	tokenService.EXPECT().IssueToken(userID).Return("signed.jwt.token", nil)

	out, err := svc.GoogleAuth(ctx, usecase.GoogleAuthInput{Code: "auth-code"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
}

func TestAuthService_GoogleAuth_LinksExistingEmailAccount(t *testing.T) {
	svc, txManager, userRepo, authRepo, _, tokenService, oauthService := newAuthServiceForTest(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()

	oauthService.EXPECT().
		ExchangeCode(ctx, "auth-code").
		Return(&service.OAuthIdentity{Subject: "google-sub-1", Email: "ana@x.com", Name: "Ana"}, nil)

	authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrAuthNotFound)

	userRepo.EXPECT().
		FindByEmail(ctx, "ana@x.com").
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)

	tokenService.EXPECT().IssueToken(userID).Return("signed.jwt.token", nil)

	out, err := svc.GoogleAuth(ctx, usecase.GoogleAuthInput{Code: "auth-code"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
}

func TestAuthService_GoogleAuth_ExchangeFails(t *testing.T) {
	svc, _, _, _, _, _, oauthService := newAuthServiceForTest(t)

	ctx := context.Background()

	oauthService.EXPECT().
		ExchangeCode(ctx, "bad-code").
		Return(nil, domainerrors.ErrOAuthExchangeFailed)

	out, err := svc.GoogleAuth(ctx, usecase.GoogleAuthInput{Code: "bad-code"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthExchangeFailed)
}
