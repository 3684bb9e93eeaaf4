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

func newCustomerServiceForTest(t *testing.T) (usecase.CustomerUsecase, *mockRepo.MockCustomerRepository) {
	t.Helper()

	customerRepo := mockRepo.NewMockCustomerRepository(t)
	svc := NewCustomerService(CustomerServiceParams{CustomerRepo: customerRepo, Logger: testLogger()})

	return svc, customerRepo
}

func TestCustomerService_ListCustomers_EmptyForFreshUser(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.EXPECT().ListByOwner(ctx, userID).Return([]*entity.Customer{}, nil)

	customers, err := svc.ListCustomers(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	customerRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrNotFound)

	customer, err := svc.GetCustomer(ctx, id, userID)
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_CreateCustomer_DefaultsToActiveStatus(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			assert.Equal(t, entity.CustomerStatusActive, customer.Status)
			assert.Equal(t, userID, customer.UserID)
			customer.ID = uuid.New()
		}).
		Return(nil)

	customer, err := svc.CreateCustomer(ctx, userID, usecase.CreateCustomerInput{
		Name:  "Bob",
		Email: "bob@x.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", customer.Name)
	assert.Equal(t, entity.CustomerStatusActive, customer.Status)
	assert.Nil(t, customer.Address)
}

func TestCustomerService_CreateCustomer_WithAddress(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	customer, err := svc.CreateCustomer(ctx, userID, usecase.CreateCustomerInput{
		Name:   "Bob",
		Email:  "bob@x.com",
		Phone:  "555-0100",
		Status: "INACTIVE",
		Address: &usecase.AddressInput{
			Street:  "Main St 1",
			City:    "Springfield",
			State:   "SP",
			Country: "BR",
			Zip:     "00000-000",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, customer.Address)
	assert.Equal(t, "Springfield", customer.Address.City)
	assert.Equal(t, entity.CustomerStatusInactive, customer.Status)
}

func TestCustomerService_UpdateCustomer_MergesOnlyGivenFields(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()
	newPhone := "555-0199"

	customerRepo.EXPECT().
		FindByID(ctx, id, userID).
		Return(&entity.Customer{
			ID:     id,
			Name:   "Bob",
			Email:  "bob@x.com",
			Phone:  "555-0100",
			Status: entity.CustomerStatusActive,
			UserID: userID,
		}, nil)

	customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			assert.Equal(t, "555-0199", customer.Phone)
			assert.Equal(t, "Bob", customer.Name)
			assert.Equal(t, "bob@x.com", customer.Email)
		}).
		Return(nil)

	customer, err := svc.UpdateCustomer(ctx, id, userID, usecase.UpdateCustomerInput{Phone: &newPhone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", customer.Phone)
	assert.Equal(t, "Bob", customer.Name)
}

func TestCustomerService_UpdateCustomer_NotFound(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	customerRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrNotFound)

	customer, err := svc.UpdateCustomer(ctx, id, userID, usecase.UpdateCustomerInput{})
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	svc, customerRepo := newCustomerServiceForTest(t)

	ctx := context.Background()
	id := uuid.New()
	userID := uuid.New()

	customerRepo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrNotFound)

	err := svc.DeleteCustomer(ctx, id, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
