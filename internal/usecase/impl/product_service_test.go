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

func newProductServiceForTest(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockProductCategoryRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockProductCategoryRepository(t)
	svc := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       testLogger(),
	})

	return svc, productRepo, categoryRepo
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	svc, productRepo, categoryRepo := newProductServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.EXPECT().
		FindByID(ctx, categoryID, userID).
		Return(&entity.ProductCategory{ID: categoryID, Name: "Drinks", UserID: userID}, nil)

	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, userID, product.UserID)
			assert.Equal(t, categoryID, product.CategoryID)
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := svc.CreateProduct(ctx, userID, usecase.CreateProductInput{
		Name:       "Coffee",
		Price:      12.5,
		Quantity:   10,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Coffee", product.Name)
	assert.Equal(t, 12.5, product.Price)
}

func TestProductService_CreateProduct_ForeignCategoryRejected(t *testing.T) {
	svc, _, categoryRepo := newProductServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	categoryRepo.EXPECT().
		FindByID(ctx, categoryID, userID).
		Return(nil, repository.ErrNotFound)

	product, err := svc.CreateProduct(ctx, userID, usecase.CreateProductInput{
		Name:       "Coffee",
		Price:      12.5,
		Quantity:   10,
		CategoryID: categoryID,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_UpdateProduct_PartialUpdatePreservesOtherFields(t *testing.T) {
	svc, productRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	categoryID := uuid.New()
	newPrice := 50.0

	productRepo.EXPECT().
		FindByID(ctx, id, userID).
		Return(&entity.Product{
			ID:         id,
			Name:       "Coffee",
			Price:      100,
			Quantity:   5,
			CategoryID: categoryID,
			UserID:     userID,
		}, nil)

	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, 50.0, product.Price)
			assert.Equal(t, 5, product.Quantity)
			assert.Equal(t, "Coffee", product.Name)
		}).
		Return(nil)

	product, err := svc.UpdateProduct(ctx, id, userID, usecase.UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 50.0, product.Price)
	assert.Equal(t, 5, product.Quantity)
}

func TestProductService_UpdateProduct_CategoryChangeIsVerified(t *testing.T) {
	svc, productRepo, categoryRepo := newProductServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	newCategoryID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, id, userID).
		Return(&entity.Product{ID: id, Name: "Coffee", CategoryID: uuid.New(), UserID: userID}, nil)

	categoryRepo.EXPECT().
		FindByID(ctx, newCategoryID, userID).
		Return(nil, repository.ErrNotFound)

	product, err := svc.UpdateProduct(ctx, id, userID, usecase.UpdateProductInput{CategoryID: &newCategoryID})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, productRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrNotFound)

	product, err := svc.GetProduct(ctx, id, userID)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	svc, productRepo, _ := newProductServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	productRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrNotFound)

	err := svc.DeleteProduct(ctx, id, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
