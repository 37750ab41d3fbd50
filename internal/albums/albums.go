package albums

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

// AlbumDTO is the photo album payload.
type AlbumDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	CoverImagePath *string   `json:"cover_image_path,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateAlbumInput captures a new album.
type CreateAlbumInput struct {
	Title          string  `json:"title" validate:"required"`
	Description    *string `json:"description"`
	CoverImagePath *string `json:"cover_image_path"`
}

// UpdateAlbumInput is a partial edit.
type UpdateAlbumInput struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	CoverImagePath *string `json:"cover_image_path"`
}

// Repository wraps album persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds an album repository backed by the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Album, error) {
	var album models.Album
	if err := r.db.WithContext(ctx).First(&album, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *Repository) Create(ctx context.Context, album *models.Album) error {
	if album.ID == uuid.Nil {
		album.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(album).Error
}

func (r *Repository) Update(ctx context.Context, album *models.Album) error {
	return r.db.WithContext(ctx).Save(album).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Album{}).Error
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.Album, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	var rows []models.Album
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

type albumRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Album, error)
	Create(ctx context.Context, album *models.Album) error
	Update(ctx context.Context, album *models.Album) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]models.Album, error)
}

// Service owns album CRUD.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*AlbumDTO, error)
	Create(ctx context.Context, input CreateAlbumInput) (*AlbumDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateAlbumInput) (*AlbumDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]AlbumDTO, error)
}

type service struct {
	repo albumRepository
}

// NewService builds an album service.
func NewService(repo albumRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "album repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*AlbumDTO, error) {
	album, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	dto := toDTO(album)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateAlbumInput) (*AlbumDTO, error) {
	album := &models.Album{
		Title:          input.Title,
		Description:    input.Description,
		CoverImagePath: input.CoverImagePath,
	}
	if err := s.repo.Create(ctx, album); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create album")
	}
	dto := toDTO(album)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateAlbumInput) (*AlbumDTO, error) {
	album, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	if input.Title != nil {
		album.Title = *input.Title
	}
	if input.Description != nil {
		album.Description = input.Description
	}
	if input.CoverImagePath != nil {
		album.CoverImagePath = input.CoverImagePath
	}
	if err := s.repo.Update(ctx, album); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update album")
	}
	dto := toDTO(album)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapLookupErr(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete album")
	}
	return nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]AlbumDTO, error) {
	rows, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list albums")
	}
	dtos := make([]AlbumDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return dtos, nil
}

func toDTO(album *models.Album) AlbumDTO {
	return AlbumDTO{
		ID:             album.ID,
		Title:          album.Title,
		Description:    album.Description,
		CoverImagePath: album.CoverImagePath,
		CreatedAt:      album.CreatedAt,
		UpdatedAt:      album.UpdatedAt,
	}
}

func mapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "album not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load album")
}
