package repository

import "sellbase/internal/domain/entity"

// CustomerRepository persists customers with owner scoping on every operation.
type CustomerRepository interface {
	Owned[entity.Customer]
}
