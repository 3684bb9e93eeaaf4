package usecase

import (
	"context"

	"sellbase/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the optional postal address of a customer.
type AddressInput struct {
	Street  string
	City    string
	State   string
	Country string
	Zip     string
}

// CreateCustomerInput defines the data required to create a customer.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Notes   string
	Address *AddressInput
	Status  string
}

// UpdateCustomerInput carries a partial customer update. Nil fields are left
// untouched; a non-nil Address replaces the stored one wholesale.
type UpdateCustomerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Notes   *string
	Address *AddressInput
	Status  *string
}

// CustomerUsecase defines owner-scoped customer operations.
type CustomerUsecase interface {
	ListCustomers(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error)
	CreateCustomer(ctx context.Context, userID uuid.UUID, input CreateCustomerInput) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id, userID uuid.UUID, input UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id, userID uuid.UUID) error
}
