package repositories

import (
	"tienda/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	FindAll(limit, offset int) ([]models.Product, error)
	FindByID(id string) (*models.Product, error)
	FindByTitleOrSlug(term string) (*models.Product, error)
	// Update persists the merged product. When replaceImages is true the
	// product's existing image rows are deleted and product.Images inserted
	// in their place, all within one transaction; otherwise the current
	// rows are re-read into product.Images.
	Update(product *models.Product, replaceImages bool) error
	Delete(id string) error
	DeleteAll() error
}
