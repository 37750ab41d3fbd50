package playlists

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

// PlaylistDTO is the curated playlist payload.
type PlaylistDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	ExternalID     string    `json:"external_id"`
	Description    *string   `json:"description,omitempty"`
	CoverImagePath *string   `json:"cover_image_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreatePlaylistInput captures a new playlist.
type CreatePlaylistInput struct {
	Title          string  `json:"title" validate:"required"`
	ExternalID     string  `json:"external_id" validate:"required"`
	Description    *string `json:"description"`
	CoverImagePath *string `json:"cover_image_path"`
}

// UpdatePlaylistInput is a partial edit.
type UpdatePlaylistInput struct {
	Title          *string `json:"title"`
	ExternalID     *string `json:"external_id"`
	Description    *string `json:"description"`
	CoverImagePath *string `json:"cover_image_path"`
}

// Repository wraps playlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a playlist repository backed by the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).First(&playlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func (r *Repository) Create(ctx context.Context, playlist *models.Playlist) error {
	if playlist.ID == uuid.Nil {
		playlist.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(playlist).Error
}

func (r *Repository) Update(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithContext(ctx).Save(playlist).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Playlist{}).Error
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.Playlist, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	var rows []models.Playlist
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

type playlistRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error)
	Create(ctx context.Context, playlist *models.Playlist) error
	Update(ctx context.Context, playlist *models.Playlist) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]models.Playlist, error)
}

// Service owns playlist CRUD.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*PlaylistDTO, error)
	Create(ctx context.Context, input CreatePlaylistInput) (*PlaylistDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePlaylistInput) (*PlaylistDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]PlaylistDTO, error)
}

type service struct {
	repo playlistRepository
}

// NewService builds a playlist service.
func NewService(repo playlistRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "playlist repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PlaylistDTO, error) {
	playlist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	dto := toDTO(playlist)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreatePlaylistInput) (*PlaylistDTO, error) {
	if strings.TrimSpace(input.ExternalID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "external_id is required")
	}
	playlist := &models.Playlist{
		Title:          input.Title,
		ExternalID:     input.ExternalID,
		Description:    input.Description,
		CoverImagePath: input.CoverImagePath,
	}
	if err := s.repo.Create(ctx, playlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create playlist")
	}
	dto := toDTO(playlist)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePlaylistInput) (*PlaylistDTO, error) {
	playlist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	if input.Title != nil {
		playlist.Title = *input.Title
	}
	if input.ExternalID != nil {
		if strings.TrimSpace(*input.ExternalID) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "external_id cannot be empty")
		}
		playlist.ExternalID = *input.ExternalID
	}
	if input.Description != nil {
		playlist.Description = input.Description
	}
	if input.CoverImagePath != nil {
		playlist.CoverImagePath = input.CoverImagePath
	}
	if err := s.repo.Update(ctx, playlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update playlist")
	}
	dto := toDTO(playlist)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapLookupErr(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete playlist")
	}
	return nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]PlaylistDTO, error) {
	rows, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list playlists")
	}
	dtos := make([]PlaylistDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return dtos, nil
}

func toDTO(playlist *models.Playlist) PlaylistDTO {
	return PlaylistDTO{
		ID:             playlist.ID,
		Title:          playlist.Title,
		ExternalID:     playlist.ExternalID,
		Description:    playlist.Description,
		CoverImagePath: playlist.CoverImagePath,
		CreatedAt:      playlist.CreatedAt,
		UpdatedAt:      playlist.UpdatedAt,
	}
}

func mapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "playlist not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load playlist")
}
