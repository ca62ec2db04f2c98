package repositories

import (
	"errors"
	"fmt"
	"strings"

	"tienda/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create persists the product together with its image rows as one unit.
// GORM saves the association inside a single transaction.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindAll retrieves a page of products in store-default order with their
// images eager-loaded. An out-of-range offset yields an empty slice.
func (r *GORMProductRepository) FindAll(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Images").Limit(limit).Offset(offset).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single product by its ID with images eager-loaded.
func (r *GORMProductRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("User").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	if product.User != nil {
		product.User.Password = "" // the preload pulls all user columns
	}
	return &product, nil
}

// FindByTitleOrSlug matches the term case-insensitively against the title
// (uppercase comparison) or the slug (lowercase comparison).
func (r *GORMProductRepository) FindByTitleOrSlug(term string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").Preload("User").
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by title or slug %q: %w", term, err)
	}
	if product.User != nil {
		product.User.Password = "" // the preload pulls all user columns
	}
	return &product, nil
}

// Update saves the merged product inside a transaction. When replaceImages
// is true the product's old image rows are deleted and product.Images are
// inserted in their given order; on any failure the transaction rolls back,
// so no partial image replacement ever survives. When replaceImages is
// false the stored image rows are re-read so the caller gets back a
// complete product.
func (r *GORMProductRepository) Update(product *models.Product, replaceImages bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if replaceImages {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductImage{}).Error; err != nil {
				return fmt.Errorf("failed to delete images of product %s: %w", product.ID, err)
			}
			for i := range product.Images {
				product.Images[i].ID = 0
				product.Images[i].ProductID = product.ID
			}
			if len(product.Images) > 0 {
				if err := tx.Create(&product.Images).Error; err != nil {
					return fmt.Errorf("failed to create images of product %s: %w", product.ID, err)
				}
			}
		}

		if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
			return fmt.Errorf("failed to update product %s: %w", product.ID, err)
		}

		if !replaceImages {
			if err := tx.Where("product_id = ?", product.ID).
				Order("id").Find(&product.Images).Error; err != nil {
				return fmt.Errorf("failed to load images of product %s: %w", product.ID, err)
			}
		}
		return nil
	})
}

// Delete removes the product and its owned image rows for good. Soft
// deletion would keep the unique title and slug values occupied.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).
			Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete images of product %s: %w", id, err)
		}
		res := tx.Unscoped().Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteAll wipes every product and image row. Used by the seeder only.
func (r *GORMProductRepository) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to wipe product images: %w", err)
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to wipe products: %w", err)
		}
		return nil
	})
}
