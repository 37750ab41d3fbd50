package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Recipe is a published recipe entry.
type Recipe struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string         `gorm:"column:title;type:text;not null"`
	Slug        string         `gorm:"column:slug;type:text;not null;uniqueIndex:recipes_slug_key"`
	Summary     *string        `gorm:"column:summary;type:text"`
	ImagePath   *string        `gorm:"column:image_path;type:text"`
	Tags        pq.StringArray `gorm:"column:tags;type:text[]"`
	IsPublished bool           `gorm:"column:is_published;not null;default:false"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
