package carousels

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

// CarouselDTO is the carousel payload returned to clients.
type CarouselDTO struct {
	ID          uuid.UUID             `json:"id"`
	Page        enums.Page            `json:"page"`
	Slug        string                `json:"slug"`
	Title       *string               `json:"title,omitempty"`
	Description *string               `json:"description,omitempty"`
	IsActive    bool                  `json:"is_active"`
	Cardinality enums.SlotCardinality `json:"cardinality"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// RenderedItemDTO is one carousel member shaped for a page renderer: the kind,
// the single populated reference, and the denormalized display fields.
type RenderedItemDTO struct {
	ID         uuid.UUID      `json:"id"`
	Kind       enums.ItemKind `json:"kind"`
	RefID      *uuid.UUID     `json:"ref_id,omitempty"`
	AlbumID    *uuid.UUID     `json:"album_id,omitempty"`
	VideoID    *string        `json:"video_id,omitempty"`
	LinkURL    *string        `json:"link_url,omitempty"`
	OrderIndex int            `json:"order_index"`
	IsFeatured bool           `json:"is_featured"`
	Caption    *string        `json:"caption,omitempty"`
	ImagePath  *string        `json:"image_path,omitempty"`
}

// RenderedCarouselDTO is the public read payload: a carousel plus its active
// members in display order.
type RenderedCarouselDTO struct {
	Carousel CarouselDTO       `json:"carousel"`
	Items    []RenderedItemDTO `json:"items"`
}

// CreateDefaults holds the optional display fields applied when FindOrCreate
// has to create the carousel.
type CreateDefaults struct {
	Title       *string
	Description *string
}

// UpdateCarouselInput captures the mutable carousel fields.
type UpdateCarouselInput struct {
	Title       *string
	Description *string
	IsActive    *bool
}

func toDTO(c *models.Carousel) CarouselDTO {
	return CarouselDTO{
		ID:          c.ID,
		Page:        c.Page,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		IsActive:    c.IsActive,
		Cardinality: SlotCardinality(c.Slug),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toRenderedItem(item models.CarouselItem) RenderedItemDTO {
	return RenderedItemDTO{
		ID:         item.ID,
		Kind:       item.Kind,
		RefID:      item.RefID,
		AlbumID:    item.AlbumID,
		VideoID:    item.VideoID,
		LinkURL:    item.LinkURL,
		OrderIndex: item.OrderIndex,
		IsFeatured: item.IsFeatured,
		Caption:    item.Caption,
		ImagePath:  item.ImagePath,
	}
}
