package postgres

import (
	"sellbase/internal/domain/entity"
	"sellbase/internal/domain/repository"
	"sellbase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface by
// reusing the shared owner-scoped store with customer mappers.
type customerRepository struct {
	*ownedStore[entity.Customer, model.CustomerModel]
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		ownedStore: newOwnedStore(db, "customer", customerOwner, fromCustomerDomain, toCustomerDomain),
	}
}

func customerOwner(data *entity.Customer) uuid.UUID {
	return data.UserID
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Notes:     data.Notes,
		Address:   toAddressDomain(data.Address),
		Status:    entity.CustomerStatus(data.Status),
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Notes:     data.Notes,
		Address:   fromAddressDomain(data.Address),
		Status:    string(data.Status),
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

// toAddressDomain rebuilds the optional address value from its flattened
// columns. All-empty columns mean the customer has no address on file.
func toAddressDomain(data model.AddressColumns) *entity.Address {
	if data == (model.AddressColumns{}) {
		return nil
	}

	return &entity.Address{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		Country: data.Country,
		Zip:     data.Zip,
	}
}

func fromAddressDomain(data *entity.Address) model.AddressColumns {
	if data == nil {
		return model.AddressColumns{}
	}

	return model.AddressColumns{
		Street:  data.Street,
		City:    data.City,
		State:   data.State,
		Country: data.Country,
		Zip:     data.Zip,
	}
}
