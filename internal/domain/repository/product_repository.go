package repository

import "sellbase/internal/domain/entity"

// ProductRepository persists products with owner scoping on every operation.
type ProductRepository interface {
	Owned[entity.Product]
}
