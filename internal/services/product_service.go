package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default pagination window applied when the caller supplies none.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// EventPublisher publishes catalog events to a message broker. A nil
// publisher is valid; publication failures never fail the request.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CreateProductInput carries the attributes for a new product.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"required"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// UpdateProductInput is a partial payload: nil fields keep their stored
// values. A non-nil Images list fully replaces the product's image rows.
type UpdateProductInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        *[]string `json:"tags"`
	Images      *[]string `json:"images"`
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil when no
// broker is configured.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

var slugReplacer = strings.NewReplacer(" ", "-", "'", "", "´", "")

// NormalizeSlug lowercases the value, replaces spaces with hyphens and
// strips plain and accented apostrophes. It is applied immediately before
// every insert and every update, whether or not the caller supplied a slug.
func NormalizeSlug(value string) string {
	return slugReplacer.Replace(strings.ToLower(value))
}

// CreateProduct persists a new product and its image rows as one unit,
// owned by the given user when one is provided.
func (s *ProductService) CreateProduct(in CreateProductInput, owner *models.User) (*models.Product, error) {
	product := &models.Product{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Slug:        in.Slug,
		Stock:       in.Stock,
		Sizes:       in.Sizes,
		Gender:      in.Gender,
		Tags:        in.Tags,
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	if product.Slug == "" {
		product.Slug = product.Title
	}
	product.Slug = NormalizeSlug(product.Slug)

	product.Images = make([]models.ProductImage, 0, len(in.Images))
	for _, url := range in.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url})
	}
	if owner != nil {
		product.UserID = &owner.ID
		product.User = owner
	}

	if err := s.repo.Create(product); err != nil {
		return nil, s.storeError(err)
	}
	s.publish("product.created", product.ID)
	return product, nil
}

// GetProducts returns a page of products in store-default order. A
// non-positive limit falls back to DefaultLimit, a negative offset to
// DefaultOffset. An out-of-range offset yields an empty list, not an error.
func (s *ProductService) GetProducts(limit, offset int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	products, err := s.repo.FindAll(limit, offset)
	if err != nil {
		return nil, s.storeError(err)
	}
	return products, nil
}

// GetProduct resolves a single product from a term that is either a UUID
// or a title/slug. A well-formed UUID is looked up by ID; anything else is
// matched case-insensitively against title and slug.
func (s *ProductService) GetProduct(term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if _, parseErr := uuid.Parse(term); parseErr == nil {
		product, err = s.repo.FindByID(term)
	} else {
		product, err = s.repo.FindByTitleOrSlug(term)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product with %q: %w", term, ErrNotFound)
		}
		return nil, s.storeError(err)
	}
	return product, nil
}

// UpdateProduct merges the partial payload onto the stored product,
// re-derives the slug and persists the result transactionally. A supplied
// image list fully replaces the old rows; on any failure the transaction
// rolls back, leaving the original images intact.
func (s *ProductService) UpdateProduct(id string, in UpdateProductInput, owner *models.User) (*models.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("product with id %q: %w", id, ErrNotFound)
		}
		return nil, s.storeError(err)
	}

	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Slug != nil {
		product.Slug = *in.Slug
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Sizes != nil {
		product.Sizes = *in.Sizes
	}
	if in.Gender != nil {
		product.Gender = *in.Gender
	}
	if in.Tags != nil {
		product.Tags = *in.Tags
	}

	if product.Slug == "" {
		product.Slug = product.Title
	}
	product.Slug = NormalizeSlug(product.Slug)

	replaceImages := in.Images != nil
	if replaceImages {
		product.Images = make([]models.ProductImage, 0, len(*in.Images))
		for _, url := range *in.Images {
			product.Images = append(product.Images, models.ProductImage{URL: url})
		}
	}
	if owner != nil {
		product.UserID = &owner.ID
		product.User = owner
	}

	if err := s.repo.Update(product, replaceImages); err != nil {
		return nil, s.storeError(err)
	}
	s.publish("product.updated", product.ID)
	return product, nil
}

// DeleteProduct resolves the term with GetProduct semantics, then removes
// the product and its owned images.
func (s *ProductService) DeleteProduct(term string) error {
	product, err := s.GetProduct(term)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("product with id %q: %w", product.ID, ErrNotFound)
		}
		return s.storeError(err)
	}
	s.publish("product.deleted", product.ID)
	return nil
}

// DeleteAllProducts unconditionally wipes the catalog. Seeder use only.
func (s *ProductService) DeleteAllProducts() error {
	if err := s.repo.DeleteAll(); err != nil {
		return s.storeError(err)
	}
	return nil
}

// storeError reclassifies a persistence failure into the service taxonomy.
// Uniqueness violations become ErrConflict with the store's detail message;
// everything else is logged and collapsed into the opaque ErrInternal.
func (s *ProductService) storeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%v: %w", err, ErrConflict)
	}
	log.Printf("Unexpected store error: %v", err)
	return ErrInternal
}

func (s *ProductService) publish(event, productID string) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(map[string]string{
		"event":     event,
		"productId": productID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", event, productID, err)
		return
	}
	if err := s.events.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, productID, err)
	}
}
