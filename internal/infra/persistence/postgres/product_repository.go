package postgres

import (
	"sellbase/internal/domain/entity"
	"sellbase/internal/domain/repository"
	"sellbase/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface by
// reusing the shared owner-scoped store with product mappers.
type productRepository struct {
	*ownedStore[entity.Product, model.ProductModel]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		ownedStore: newOwnedStore(db, "product", productOwner, fromProductDomain, toProductDomain),
	}
}

func productOwner(data *entity.Product) uuid.UUID {
	return data.UserID
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		Image:      data.Image,
		CategoryID: data.CategoryID,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		Image:      data.Image,
		CategoryID: data.CategoryID,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
	}
}
