package models

import (
	"time"

	"github.com/google/uuid"
)

// Album is a photo album owned by the albums service.
type Album struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title          string    `gorm:"column:title;type:text;not null"`
	Description    *string   `gorm:"column:description;type:text"`
	CoverImagePath *string   `gorm:"column:cover_image_path;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
