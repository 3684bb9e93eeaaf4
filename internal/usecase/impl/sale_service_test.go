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

func newSaleServiceForTest(t *testing.T) (
	usecase.SaleUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockSaleRepository,
	*mockRepo.MockCustomerRepository,
	*mockRepo.MockProductRepository,
) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	svc := NewSaleService(SaleServiceParams{
		TxManager:    txManager,
		SaleRepo:     saleRepo,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
		Logger:       testLogger(),
	})

	return svc, txManager, saleRepo, customerRepo, productRepo
}

func TestSaleService_CreateSale_WritesSaleAndItemsInOneTransaction(t *testing.T) {
	svc, txManager, saleRepo, customerRepo, productRepo := newSaleServiceForTest(t)

	txSaleRepo := mockRepo.NewMockSaleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SaleRepo().Return(txSaleRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()
	saleID := uuid.New()

	customerRepo.EXPECT().
		FindByID(ctx, customerID, userID).
		Return(&entity.Customer{ID: customerID, UserID: userID}, nil)

	productRepo.EXPECT().
		FindByID(ctx, productID, userID).
		Return(&entity.Product{ID: productID, UserID: userID}, nil)

	txSaleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sale")).
		Run(func(_ context.Context, sale *entity.Sale) {
			assert.Equal(t, userID, sale.UserID)
			assert.Equal(t, customerID, sale.CustomerID)
			sale.ID = saleID
		}).
		Return(nil)

	txSaleRepo.EXPECT().
		CreateLineItems(ctx, saleID, mock.AnythingOfType("[]*entity.SaleLineItem")).
		Run(func(_ context.Context, _ uuid.UUID, items []*entity.SaleLineItem) {
			require.Len(t, items, 1)
			assert.Equal(t, productID, items[0].ProductID)
			assert.Equal(t, 2, items[0].Quantity)
		}).
		Return(nil)

	saleRepo.EXPECT().
		FindByID(ctx, saleID, userID).
		Return(&entity.Sale{
			ID:         saleID,
			Rating:     4.5,
			Total:      25,
			CustomerID: customerID,
			UserID:     userID,
			Customer:   &entity.CustomerSummary{ID: customerID, Name: "Bob"},
			Items: []*entity.SaleLineItem{
				{SaleID: saleID, ProductID: productID, Quantity: 2},
			},
		}, nil)

	sale, err := svc.CreateSale(ctx, userID, usecase.CreateSaleInput{
		Rating:     4.5,
		Total:      25,
		CustomerID: customerID,
		Items:      []usecase.SaleItemInput{{ProductID: productID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, saleID, sale.ID)
	require.NotNil(t, sale.Customer)
	assert.Equal(t, "Bob", sale.Customer.Name)
	require.Len(t, sale.Items, 1)
}

func TestSaleService_CreateSale_ForeignCustomerRejected(t *testing.T) {
	svc, _, _, customerRepo, _ := newSaleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	customerID := uuid.New()

	customerRepo.EXPECT().
		FindByID(ctx, customerID, userID).
		Return(nil, repository.ErrNotFound)

	sale, err := svc.CreateSale(ctx, userID, usecase.CreateSaleInput{
		CustomerID: customerID,
		Items:      []usecase.SaleItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestSaleService_CreateSale_ForeignProductRejected(t *testing.T) {
	svc, _, _, customerRepo, productRepo := newSaleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	customerRepo.EXPECT().
		FindByID(ctx, customerID, userID).
		Return(&entity.Customer{ID: customerID, UserID: userID}, nil)

	productRepo.EXPECT().
		FindByID(ctx, productID, userID).
		Return(nil, repository.ErrNotFound)

	sale, err := svc.CreateSale(ctx, userID, usecase.CreateSaleInput{
		CustomerID: customerID,
		Items:      []usecase.SaleItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestSaleService_UpdateSale_ReplacesItemsWhenGiven(t *testing.T) {
	svc, txManager, saleRepo, _, productRepo := newSaleServiceForTest(t)

	txSaleRepo := mockRepo.NewMockSaleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().SaleRepo().Return(txSaleRepo)
	expectTransaction(t, txManager, factory)

	ctx := context.Background()
	userID := uuid.New()
	saleID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()
	newTotal := 40.0

	saleRepo.EXPECT().
		FindByID(ctx, saleID, userID).
		Return(&entity.Sale{
			ID:         saleID,
			Rating:     4,
			Total:      25,
			CustomerID: customerID,
			UserID:     userID,
		}, nil).Once()

	productRepo.EXPECT().
		FindByID(ctx, productID, userID).
		Return(&entity.Product{ID: productID, UserID: userID}, nil)

	txSaleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Sale")).
		Run(func(_ context.Context, sale *entity.Sale) {
			assert.Equal(t, 40.0, sale.Total)
			assert.Equal(t, 4.0, sale.Rating)
		}).
		Return(nil)

	txSaleRepo.EXPECT().
		ReplaceLineItems(ctx, saleID, mock.AnythingOfType("[]*entity.SaleLineItem")).
		Return(nil)

	saleRepo.EXPECT().
		FindByID(ctx, saleID, userID).
		Return(&entity.Sale{
			ID:         saleID,
			Rating:     4,
			Total:      40,
			CustomerID: customerID,
			UserID:     userID,
			Items: []*entity.SaleLineItem{
				{SaleID: saleID, ProductID: productID, Quantity: 3},
			},
		}, nil).Once()

	sale, err := svc.UpdateSale(ctx, saleID, userID, usecase.UpdateSaleInput{
		Total: &newTotal,
		Items: []usecase.SaleItemInput{{ProductID: productID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, sale.Total)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 3, sale.Items[0].Quantity)
}

func TestSaleService_UpdateSale_NotFound(t *testing.T) {
	svc, _, saleRepo, _, _ := newSaleServiceForTest(t)

	ctx := context.Background()
	saleID := uuid.New()
	userID := uuid.New()

	saleRepo.EXPECT().FindByID(ctx, saleID, userID).Return(nil, repository.ErrNotFound)

	sale, err := svc.UpdateSale(ctx, saleID, userID, usecase.UpdateSaleInput{})
	require.Error(t, err)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
}

func TestSaleService_ListSales_Detailed(t *testing.T) {
	svc, _, saleRepo, _, _ := newSaleServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	saleRepo.EXPECT().
		ListDetailed(ctx, userID).
		Return([]*entity.Sale{
			{ID: uuid.New(), UserID: userID, Customer: &entity.CustomerSummary{Name: "Bob"}},
		}, nil)

	sales, err := svc.ListSales(ctx, userID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Bob", sales[0].Customer.Name)
}

func TestSaleService_DeleteSale_NotFound(t *testing.T) {
	svc, _, saleRepo, _, _ := newSaleServiceForTest(t)

	ctx := context.Background()
	saleID := uuid.New()
	userID := uuid.New()

	saleRepo.EXPECT().Delete(ctx, saleID, userID).Return(repository.ErrNotFound)

	err := svc.DeleteSale(ctx, saleID, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
}
