package repository

import "sellbase/internal/domain/entity"

// ProductCategoryRepository persists product categories with owner scoping on every operation.
type ProductCategoryRepository interface {
	Owned[entity.ProductCategory]
}
