package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

// CarouselItem is one member of a carousel. Exactly one of the reference
// columns is populated; which one is a function of Kind.
type CarouselItem struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CarouselID uuid.UUID      `gorm:"column:carousel_id;type:uuid;not null;index:carousel_items_carousel_id_idx;uniqueIndex:carousel_items_carousel_ref_key;uniqueIndex:carousel_items_carousel_album_key"`
	Kind       enums.ItemKind `gorm:"column:kind;type:text;not null"`

	RefID   *uuid.UUID `gorm:"column:ref_id;type:uuid;uniqueIndex:carousel_items_carousel_ref_key,where:ref_id IS NOT NULL"`
	AlbumID *uuid.UUID `gorm:"column:album_id;type:uuid;uniqueIndex:carousel_items_carousel_album_key,where:album_id IS NOT NULL"`
	VideoID *string    `gorm:"column:video_id;type:text"`
	LinkURL *string    `gorm:"column:link_url;type:text"`

	OrderIndex int  `gorm:"column:order_index;not null;default:0"`
	IsActive   bool `gorm:"column:is_active;not null;default:true"`
	IsFeatured bool `gorm:"column:is_featured;not null;default:false"`

	// Denormalized display fields so renderers can skip the entity join.
	Caption   *string `gorm:"column:caption;type:text"`
	ImagePath *string `gorm:"column:image_path;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
