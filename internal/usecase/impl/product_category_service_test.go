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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceForTest(t *testing.T) (usecase.ProductCategoryUsecase, *mockRepo.MockProductCategoryRepository) {
	t.Helper()

	categoryRepo := mockRepo.NewMockProductCategoryRepository(t)
	svc := NewProductCategoryService(ProductCategoryServiceParams{CategoryRepo: categoryRepo, Logger: testLogger()})

	return svc, categoryRepo
}

func TestProductCategoryService_CreateCategory(t *testing.T) {
	svc, categoryRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProductCategory")).
		Run(func(_ context.Context, category *entity.ProductCategory) {
			assert.Equal(t, userID, category.UserID)
			category.ID = uuid.New()
		}).
		Return(nil)

	category, err := svc.CreateCategory(ctx, userID, usecase.CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)
	assert.NotEqual(t, uuid.Nil, category.ID)
}

func TestProductCategoryService_UpdateCategory_MergesName(t *testing.T) {
	svc, categoryRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	newName := "Hot Drinks"

	categoryRepo.EXPECT().
		FindByID(ctx, id, userID).
		Return(&entity.ProductCategory{ID: id, Name: "Drinks", UserID: userID}, nil)

	categoryRepo.EXPECT().
		Update(ctx, &entity.ProductCategory{ID: id, Name: "Hot Drinks", UserID: userID}).
		Return(nil)

	category, err := svc.UpdateCategory(ctx, id, userID, usecase.UpdateCategoryInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Hot Drinks", category.Name)
}

func TestProductCategoryService_GetCategory_NotFound(t *testing.T) {
	svc, categoryRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	categoryRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrNotFound)

	category, err := svc.GetCategory(ctx, id, userID)
	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductCategoryService_DeleteCategory_NotFound(t *testing.T) {
	svc, categoryRepo := newCategoryServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	categoryRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrNotFound)

	err := svc.DeleteCategory(ctx, id, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
