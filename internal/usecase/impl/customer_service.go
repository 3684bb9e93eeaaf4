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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCustomers returns every customer owned by userID, oldest first.
func (srv *customerService) ListCustomers(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomer returns one customer scoped to its owner.
func (srv *customerService) GetCustomer(ctx context.Context, id, userID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}

// CreateCustomer persists a new customer owned by userID. Status defaults to
// active when the payload leaves it out.
func (srv *customerService) CreateCustomer(ctx context.Context, userID uuid.UUID, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	status := entity.CustomerStatus(input.Status)
	if input.Status == "" {
		status = entity.CustomerStatusActive
	}

	customer := &entity.Customer{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Notes:   input.Notes,
		Address: toAddressEntity(input.Address),
		Status:  status,
		UserID:  userID,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.log(ctx).Warn("Failed to create customer", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Customer created", slog.Any("customerID", customer.ID), slog.Any("userID", userID))

	return customer, nil
}

// UpdateCustomer merges the given fields into the stored customer and saves
// the result. Absent fields keep their stored values.
func (srv *customerService) UpdateCustomer(ctx context.Context, id, userID uuid.UUID, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.Address != nil {
		customer.Address = toAddressEntity(input.Address)
	}
	if input.Status != nil {
		customer.Status = entity.CustomerStatus(*input.Status)
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		srv.log(ctx).Warn("Failed to update customer", slog.Any("customerID", id), slog.Any("error", err))

		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes one customer scoped to its owner.
func (srv *customerService) DeleteCustomer(ctx context.Context, id, userID uuid.UUID) error {
	if err := srv.customerRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Debug("Customer deleted", slog.Any("customerID", id), slog.Any("userID", userID))

	return nil
}

func toAddressEntity(input *usecase.AddressInput) *entity.Address {
	if input == nil {
		return nil
	}

	return &entity.Address{
		Street:  input.Street,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
		Zip:     input.Zip,
	}
}
