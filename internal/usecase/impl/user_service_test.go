package impl

import (
	"context"
	"testing"

	"sellbase/internal/domain/entity"
	domainerrors "sellbase/internal/domain/errors"
	"sellbase/internal/domain/repository"
	mockRepo "sellbase/internal/mocks/repository"
	"sellbase/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_Self(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	user, err := svc.GetUser(ctx, userID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestUserService_GetUser_OtherAccountReadsAsMissing(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	user, err := svc.GetUser(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_MergesOnlyGivenFields(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, TxManager: txManager, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()
	newName := "Ana Maria"

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	expectTransaction(t, txManager, factory)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		Update(ctx, &entity.User{ID: userID, Name: "Ana Maria", Email: "ana@x.com"}).
		Return(nil)

	user, err := svc.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", user.Name)
	assert.Equal(t, "ana@x.com", user.Email)
}

func TestUserService_UpdateUser_EmailChangeRekeysCredential(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, TxManager: txManager, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()
	newEmail := "ana.new@x.com"

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	expectTransaction(t, txManager, factory)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)

	userRepo.EXPECT().
		Update(ctx, &entity.User{ID: userID, Name: "Ana", Email: "ana.new@x.com"}).
		Return(nil)
	authRepo.EXPECT().
		UpdateProviderUserID(ctx, userID, entity.ProviderTypeEmail, "ana.new@x.com").
		Return(nil)

	user, err := svc.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "ana.new@x.com", user.Email)
}

func TestUserService_UpdateUser_EmailChangeWithoutEmailCredential(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, TxManager: txManager, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()
	newEmail := "ana.new@x.com"

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	expectTransaction(t, txManager, factory)
	factory.EXPECT().UserRepo().Return(userRepo)
	factory.EXPECT().AuthRepo().Return(authRepo)

	userRepo.EXPECT().
		Update(ctx, &entity.User{ID: userID, Name: "Ana", Email: "ana.new@x.com"}).
		Return(nil)
	// A Google-only account has no email credential to re-key.
	authRepo.EXPECT().
		UpdateProviderUserID(ctx, userID, entity.ProviderTypeEmail, "ana.new@x.com").
		Return(repository.ErrAuthNotFound)

	user, err := svc.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, "ana.new@x.com", user.Email)
}

func TestUserService_UpdateUser_SameEmailSkipsCredential(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, TxManager: txManager, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()
	sameEmail := "ana@x.com"

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}, nil)

	expectTransaction(t, txManager, factory)
	factory.EXPECT().UserRepo().Return(userRepo)

	userRepo.EXPECT().
		Update(ctx, &entity.User{ID: userID, Name: "Ana", Email: "ana@x.com"}).
		Return(nil)

	user, err := svc.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{Email: &sameEmail})
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", user.Email)
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := svc.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{})
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	require.NoError(t, svc.DeleteUser(ctx, userID, userID))
}

func TestUserService_DeleteUser_OtherAccountReadsAsMissing(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	err := svc.DeleteUser(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
