package items

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

// ItemDTO is the carousel item payload returned to admin clients.
type ItemDTO struct {
	ID         uuid.UUID      `json:"id"`
	CarouselID uuid.UUID      `json:"carousel_id"`
	Kind       enums.ItemKind `json:"kind"`
	RefID      *uuid.UUID     `json:"ref_id,omitempty"`
	AlbumID    *uuid.UUID     `json:"album_id,omitempty"`
	VideoID    *string        `json:"video_id,omitempty"`
	LinkURL    *string        `json:"link_url,omitempty"`
	OrderIndex int            `json:"order_index"`
	IsActive   bool           `json:"is_active"`
	IsFeatured bool           `json:"is_featured"`
	Caption    *string        `json:"caption,omitempty"`
	ImagePath  *string        `json:"image_path,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CreateItemInput captures everything needed to attach content to a carousel.
type CreateItemInput struct {
	CarouselID uuid.UUID
	Ref        ItemRef
	OrderIndex *int
	Caption    *string
	ImagePath  *string
	IsActive   *bool
	IsFeatured *bool
}

// UpdateItemInput is a partial edit. An order_index change is last-write-wins;
// no collision resolution is attempted.
type UpdateItemInput struct {
	Ref        *ItemRef
	OrderIndex *int
	IsActive   *bool
	IsFeatured *bool
	Caption    *string
	ImagePath  *string
}

func toDTO(item *models.CarouselItem) ItemDTO {
	return ItemDTO{
		ID:         item.ID,
		CarouselID: item.CarouselID,
		Kind:       item.Kind,
		RefID:      item.RefID,
		AlbumID:    item.AlbumID,
		VideoID:    item.VideoID,
		LinkURL:    item.LinkURL,
		OrderIndex: item.OrderIndex,
		IsActive:   item.IsActive,
		IsFeatured: item.IsFeatured,
		Caption:    item.Caption,
		ImagePath:  item.ImagePath,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}
