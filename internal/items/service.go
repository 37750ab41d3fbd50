package items

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/metrics"
)

type itemRepository interface {
	List(ctx context.Context, carouselID uuid.UUID, includeInactive bool) ([]models.CarouselItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CarouselItem, error)
	FindByReference(ctx context.Context, carouselID, refID uuid.UUID) (*models.CarouselItem, error)
	Create(ctx context.Context, item *models.CarouselItem) error
	Update(ctx context.Context, item *models.CarouselItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	CloseGaps(ctx context.Context, carouselID uuid.UUID, removedOrderIndex int) (int64, error)
	NextOrderIndex(ctx context.Context, carouselID uuid.UUID) (int, error)
}

type carouselResolver interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Carousel, error)
}

// ServiceParams groups dependencies for the item ledger service.
type ServiceParams struct {
	ItemRepo     itemRepository
	CarouselRepo carouselResolver
	Cache        *carousels.RenderCache
	Metrics      *metrics.CarouselMetrics
}

// Service owns the ordered members of carousels.
type Service interface {
	List(ctx context.Context, carouselID uuid.UUID, includeInactive bool) ([]ItemDTO, error)
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RemoveByReference(ctx context.Context, carouselID, refID uuid.UUID) error
}

type service struct {
	repo      itemRepository
	carousels carouselResolver
	cache     *carousels.RenderCache
	metrics   *metrics.CarouselMetrics
}

// NewService builds an item ledger service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.ItemRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item repo is required")
	}
	if params.CarouselRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "carousel repo is required")
	}
	return &service{
		repo:      params.ItemRepo,
		carousels: params.CarouselRepo,
		cache:     params.Cache,
		metrics:   params.Metrics,
	}, nil
}

// List returns a carousel's members in display order.
func (s *service) List(ctx context.Context, carouselID uuid.UUID, includeInactive bool) ([]ItemDTO, error) {
	if _, err := s.loadCarousel(ctx, carouselID); err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, carouselID, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list carousel items")
	}
	dtos := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return dtos, nil
}

// Create validates the kind/reference pair, fills a trailing order_index when
// none is supplied, and persists the item. Nothing is written on validation
// failure.
func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}
	carousel, err := s.loadCarousel(ctx, input.CarouselID)
	if err != nil {
		return nil, err
	}

	orderIndex := 0
	if input.OrderIndex != nil {
		orderIndex = *input.OrderIndex
	} else {
		next, err := s.repo.NextOrderIndex(ctx, input.CarouselID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "compute order index")
		}
		orderIndex = next
	}

	item := &models.CarouselItem{
		CarouselID: input.CarouselID,
		OrderIndex: orderIndex,
		IsActive:   true,
		Caption:    input.Caption,
		ImagePath:  input.ImagePath,
	}
	input.Ref.ApplyTo(item)
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "carousel item violates a uniqueness rule")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create carousel item")
	}

	s.cache.Invalidate(ctx, carousel.Page, carousel.Slug)
	dto := toDTO(item)
	return &dto, nil
}

// Update applies a partial edit. A supplied Ref replaces kind and reference
// together so exclusivity holds.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	carousel, err := s.loadCarousel(ctx, item.CarouselID)
	if err != nil {
		return nil, err
	}

	if input.Ref != nil {
		if err := input.Ref.Validate(); err != nil {
			return nil, err
		}
		input.Ref.ApplyTo(item)
	}
	if input.OrderIndex != nil {
		item.OrderIndex = *input.OrderIndex
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.Caption != nil {
		item.Caption = input.Caption
	}
	if input.ImagePath != nil {
		item.ImagePath = input.ImagePath
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update carousel item")
	}

	s.cache.Invalidate(ctx, carousel.Page, carousel.Slug)
	dto := toDTO(item)
	return &dto, nil
}

// Delete detaches the item and compacts order indexes behind it. The backing
// domain entity is untouched.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return err
	}
	carousel, err := s.loadCarousel(ctx, item.CarouselID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete carousel item")
	}
	if _, err := s.repo.CloseGaps(ctx, item.CarouselID, item.OrderIndex); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close order gaps")
	}
	s.metrics.IncGapClose()

	s.cache.Invalidate(ctx, carousel.Page, carousel.Slug)
	return nil
}

// RemoveByReference detaches whichever item references the domain id.
// Absent reference means success; callers detach by natural key and must not
// care whether the row was already gone.
func (s *service) RemoveByReference(ctx context.Context, carouselID, refID uuid.UUID) error {
	item, err := s.repo.FindByReference(ctx, carouselID, refID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find carousel item by reference")
	}
	return s.Delete(ctx, item.ID)
}

func (s *service) loadCarousel(ctx context.Context, id uuid.UUID) (*models.Carousel, error) {
	carousel, err := s.carousels.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel")
	}
	return carousel, nil
}

func (s *service) loadItem(ctx context.Context, id uuid.UUID) (*models.CarouselItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carousel item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load carousel item")
	}
	return item, nil
}
