package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

// Carousel is a named, orderable content slot scoped to one site page.
type Carousel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Page        enums.Page `gorm:"column:page;type:text;not null;uniqueIndex:carousels_page_slug_key"`
	Slug        string     `gorm:"column:slug;type:text;not null;uniqueIndex:carousels_page_slug_key"`
	Title       *string    `gorm:"column:title;type:text"`
	Description *string    `gorm:"column:description;type:text"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Items []CarouselItem `gorm:"foreignKey:CarouselID;constraint:OnDelete:CASCADE"`
}
