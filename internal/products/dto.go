package products

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/pagination"
)

// ProductDTO is the storefront listing payload.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	PriceCents  int       `json:"price_cents"`
	LinkURL     *string   `json:"link_url,omitempty"`
	ImagePath   *string   `json:"image_path,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductInput captures a new listing.
type CreateProductInput struct {
	Title       string  `json:"title" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
	PriceCents  int     `json:"price_cents" validate:"gte=0"`
	LinkURL     *string `json:"link_url"`
	ImagePath   *string `json:"image_path"`
}

// UpdateProductInput is a partial edit.
type UpdateProductInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PriceCents  *int    `json:"price_cents" validate:"omitempty,gte=0"`
	LinkURL     *string `json:"link_url"`
	ImagePath   *string `json:"image_path"`
	IsActive    *bool   `json:"is_active"`
}

// ListQuery pairs list filters with cursor pagination.
type ListQuery struct {
	ActiveOnly bool
	Query      string
	Pagination pagination.Params
}

// ListResult is one page of products plus the cursor for the next.
type ListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

func toDTO(product *models.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID,
		Title:       product.Title,
		Slug:        product.Slug,
		Description: product.Description,
		PriceCents:  product.PriceCents,
		LinkURL:     product.LinkURL,
		ImagePath:   product.ImagePath,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
