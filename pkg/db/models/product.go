package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a storefront listing. Prices are integer cents.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"column:title;type:text;not null"`
	Slug        string    `gorm:"column:slug;type:text;not null;uniqueIndex:products_slug_key"`
	Description *string   `gorm:"column:description;type:text"`
	PriceCents  int       `gorm:"column:price_cents;not null;default:0"`
	LinkURL     *string   `gorm:"column:link_url;type:text"`
	ImagePath   *string   `gorm:"column:image_path;type:text"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
