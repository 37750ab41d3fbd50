package models

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a curated video playlist (external platform id plus display copy).
type Playlist struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title          string    `gorm:"column:title;type:text;not null"`
	ExternalID     string    `gorm:"column:external_id;type:text;not null"`
	Description    *string   `gorm:"column:description;type:text"`
	CoverImagePath *string   `gorm:"column:cover_image_path;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
