package models

import "gorm.io/gorm"

// Product represents a catalog item. Title and Slug are unique across the
// catalog; the slug is recomputed by the service layer before every insert
// and update, so a stored product always carries a normalized slug.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=1"`
	Price       float64        `json:"price" gorm:"default:0" validate:"gte=0"`
	Description string         `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Stock       int            `json:"stock" gorm:"default:0" validate:"gte=0"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	UserID      *string        `json:"-" gorm:"type:varchar(36)"`
	User        *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductImage is exclusively owned by one Product. Replacing a product's
// image list deletes the old rows outright; there are no partial updates.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	URL       string `json:"url" gorm:"type:text"`
	ProductID string `json:"-" gorm:"type:varchar(36);index"`
}

// ImageURLs flattens the image rows into their URLs, preserving order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}
