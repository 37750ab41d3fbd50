package carousels

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

type carouselRepository interface {
	FindByPageSlug(ctx context.Context, page enums.Page, slug string) (*models.Carousel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Carousel, error)
	FindOrCreate(ctx context.Context, page enums.Page, slug string, defaults CreateDefaults) (*models.Carousel, error)
	Update(ctx context.Context, carousel *models.Carousel) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByPage(ctx context.Context, page enums.Page, slug string) ([]models.Carousel, error)
	ListActiveItems(ctx context.Context, carouselID uuid.UUID) ([]models.CarouselItem, error)
}

// Service exposes carousel slot management plus the public render read path.
type Service interface {
	GetByPageSlug(ctx context.Context, page enums.Page, slug string) (*CarouselDTO, error)
	FindOrCreate(ctx context.Context, page enums.Page, slug string, defaults CreateDefaults) (*CarouselDTO, error)
	ListByPage(ctx context.Context, page enums.Page, slug string) ([]CarouselDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCarouselInput) (*CarouselDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResolvePublic(ctx context.Context, page enums.Page, slug string) (*RenderedCarouselDTO, error)
}

type service struct {
	repo  carouselRepository
	cache *RenderCache
}

// NewService builds a carousel service with the required dependencies.
func NewService(repo carouselRepository, cache *RenderCache) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "carousel repo is required")
	}
	return &service{repo: repo, cache: cache}, nil
}

// GetByPageSlug resolves a slot; absence surfaces as a branchable NotFound.
func (s *service) GetByPageSlug(ctx context.Context, page enums.Page, slug string) (*CarouselDTO, error) {
	carousel, err := s.repo.FindByPageSlug(ctx, page, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel")
	}
	dto := toDTO(carousel)
	return &dto, nil
}

// FindOrCreate lazily resolves a slot, creating it when absent.
func (s *service) FindOrCreate(ctx context.Context, page enums.Page, slug string, defaults CreateDefaults) (*CarouselDTO, error) {
	if !page.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid page")
	}
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug is required")
	}
	carousel, err := s.repo.FindOrCreate(ctx, page, slug, defaults)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve carousel")
	}
	dto := toDTO(carousel)
	return &dto, nil
}

// ListByPage lists a page's carousels, most recently updated first.
func (s *service) ListByPage(ctx context.Context, page enums.Page, slug string) ([]CarouselDTO, error) {
	carousels, err := s.repo.ListByPage(ctx, page, slug)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list carousels")
	}
	dtos := make([]CarouselDTO, 0, len(carousels))
	for i := range carousels {
		dtos = append(dtos, toDTO(&carousels[i]))
	}
	return dtos, nil
}

// Update applies the partial edit and drops the slot's render cache entry.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateCarouselInput) (*CarouselDTO, error) {
	carousel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel")
	}

	if input.Title != nil {
		carousel.Title = input.Title
	}
	if input.Description != nil {
		carousel.Description = input.Description
	}
	if input.IsActive != nil {
		carousel.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, carousel); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update carousel")
	}
	s.cache.Invalidate(ctx, carousel.Page, carousel.Slug)
	dto := toDTO(carousel)
	return &dto, nil
}

// Delete removes the carousel with its items.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	carousel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete carousel")
	}
	s.cache.Invalidate(ctx, carousel.Page, carousel.Slug)
	return nil
}

// ResolvePublic serves the page-render read path: active carousel plus active
// items in display order, via the render cache when warm. NotFound means
// "render nothing", not an error page.
func (s *service) ResolvePublic(ctx context.Context, page enums.Page, slug string) (*RenderedCarouselDTO, error) {
	if cached := s.cache.Get(ctx, page, slug); cached != nil {
		return cached, nil
	}

	carousel, err := s.repo.FindByPageSlug(ctx, page, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel")
	}
	if !carousel.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
	}

	items, err := s.repo.ListActiveItems(ctx, carousel.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel items")
	}

	rendered := make([]RenderedItemDTO, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, toRenderedItem(item))
	}

	payload := &RenderedCarouselDTO{Carousel: toDTO(carousel), Items: rendered}
	s.cache.Put(ctx, page, slug, payload)
	return payload, nil
}
