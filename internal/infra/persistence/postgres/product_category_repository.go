package postgres

import (
	"sellbase/internal/domain/entity"
	"sellbase/internal/domain/repository"
	"sellbase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productCategoryRepository implements the domain.ProductCategoryRepository
// interface by reusing the shared owner-scoped store with category mappers.
type productCategoryRepository struct {
	*ownedStore[entity.ProductCategory, model.ProductCategoryModel]
}

// NewProductCategoryRepository is the constructor for productCategoryRepository.
func NewProductCategoryRepository(db *gorm.DB) repository.ProductCategoryRepository {
	return &productCategoryRepository{
		ownedStore: newOwnedStore(db, "product category", categoryOwner, fromCategoryDomain, toCategoryDomain),
	}
}

func categoryOwner(data *entity.ProductCategory) uuid.UUID {
	return data.UserID
}

// toCategoryDomain converts a GORM ProductCategoryModel to a domain ProductCategory entity.
func toCategoryDomain(data *model.ProductCategoryModel) *entity.ProductCategory {
	if data == nil {
		return nil
	}

	return &entity.ProductCategory{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain ProductCategory entity to a GORM ProductCategoryModel.
func fromCategoryDomain(data *entity.ProductCategory) *model.ProductCategoryModel {
	if data == nil {
		return nil
	}

	return &model.ProductCategoryModel{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
