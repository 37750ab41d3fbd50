package curation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/internal/items"
	"github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
	"github.com/gracemeadow/meadowlane-backend/pkg/metrics"
)

// ToggleOutcome reports what a membership toggle actually did.
type ToggleOutcome string

const (
	OutcomeAdded   ToggleOutcome = "added"
	OutcomeRemoved ToggleOutcome = "removed"
	OutcomeNoop    ToggleOutcome = "noop"
)

// ToggleResult is the response body for membership and singleton operations.
type ToggleResult struct {
	Outcome    ToggleOutcome `json:"outcome"`
	CarouselID uuid.UUID     `json:"carousel_id"`
	ItemID     *uuid.UUID    `json:"item_id,omitempty"`
}

// MembershipInput drives a slug-addressed membership toggle.
type MembershipInput struct {
	Page       enums.Page
	Slug       string
	Ref        items.ItemRef
	On         bool
	OrderIndex *int
	Caption    *string
	ImagePath  *string
	Defaults   carousels.CreateDefaults
}

// SingletonInput replaces the single entry of a singleton slot.
type SingletonInput struct {
	Page      enums.Page
	Slug      string
	Ref       items.ItemRef
	Caption   *string
	ImagePath *string
	Defaults  carousels.CreateDefaults
}

type carouselStore interface {
	FindByPageSlug(ctx context.Context, page enums.Page, slug string) (*models.Carousel, error)
	FindOrCreate(ctx context.Context, page enums.Page, slug string, defaults carousels.CreateDefaults) (*models.Carousel, error)
}

type itemStore interface {
	FindByReference(ctx context.Context, carouselID, refID uuid.UUID) (*models.CarouselItem, error)
	Create(ctx context.Context, item *models.CarouselItem) error
	Update(ctx context.Context, item *models.CarouselItem) error
	CreateWithTx(tx *gorm.DB, item *models.CarouselItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context, carouselID uuid.UUID) error
	DeleteAllWithTx(tx *gorm.DB, carouselID uuid.UUID) error
	CloseGaps(ctx context.Context, carouselID uuid.UUID, removedOrderIndex int) (int64, error)
	NextOrderIndex(ctx context.Context, carouselID uuid.UUID) (int, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams groups dependencies for the curation service.
type ServiceParams struct {
	CarouselRepo carouselStore
	ItemRepo     itemStore
	Tx           txRunner
	Cache        *carousels.RenderCache
	Metrics      *metrics.CarouselMetrics
}

// Service exposes the slug-addressed curation surface used by admin tooling:
// membership toggles for ordered carousels and replace/clear for singleton
// slots. Carousels are created on first use.
type Service interface {
	SetMembership(ctx context.Context, input MembershipInput) (*ToggleResult, error)
	SetSingleton(ctx context.Context, input SingletonInput) (*ToggleResult, error)
	ClearSingleton(ctx context.Context, page enums.Page, slug string) (*ToggleResult, error)
}

type service struct {
	carousels carouselStore
	items     itemStore
	tx        txRunner
	cache     *carousels.RenderCache
	metrics   *metrics.CarouselMetrics
}

// NewService builds a curation service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CarouselRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "carousel repo is required")
	}
	if params.ItemRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item repo is required")
	}
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	return &service{
		carousels: params.CarouselRepo,
		items:     params.ItemRepo,
		tx:        params.Tx,
		cache:     params.Cache,
		metrics:   params.Metrics,
	}, nil
}

// SetMembership toggles a domain entity in or out of an ordered carousel.
// Both directions are idempotent: adding an entity already present or removing
// one already absent reports a noop instead of failing, so a stale admin tab
// repeating the call converges on the same state.
func (s *service) SetMembership(ctx context.Context, input MembershipInput) (*ToggleResult, error) {
	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}
	if carousels.SlotCardinality(input.Slug) == enums.SlotSingleton {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			"slot holds a single entry; use the singleton endpoint")
	}
	refID := input.Ref.MembershipKey()
	if refID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			"membership toggles need an entity reference, not a video or link")
	}

	if input.On {
		return s.addMember(ctx, input, refID)
	}
	return s.removeMember(ctx, input, refID)
}

func (s *service) addMember(ctx context.Context, input MembershipInput, refID uuid.UUID) (*ToggleResult, error) {
	carousel, err := s.carousels.FindOrCreate(ctx, input.Page, input.Slug, input.Defaults)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve carousel")
	}

	existing, err := s.items.FindByReference(ctx, carousel.ID, refID)
	if err == nil {
		// Already a member. A supplied order index still repositions it.
		if input.OrderIndex != nil && existing.OrderIndex != *input.OrderIndex {
			existing.OrderIndex = *input.OrderIndex
			if uerr := s.items.Update(ctx, existing); uerr != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, uerr, "reposition carousel item")
			}
			s.cache.Invalidate(ctx, input.Page, input.Slug)
		}
		s.metrics.IncToggle(input.Slug, string(OutcomeNoop))
		return &ToggleResult{Outcome: OutcomeNoop, CarouselID: carousel.ID, ItemID: &existing.ID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check carousel membership")
	}

	orderIndex := 0
	if input.OrderIndex != nil {
		orderIndex = *input.OrderIndex
	} else {
		next, err := s.items.NextOrderIndex(ctx, carousel.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "compute order index")
		}
		orderIndex = next
	}

	item := &models.CarouselItem{
		CarouselID: carousel.ID,
		OrderIndex: orderIndex,
		IsActive:   true,
		Caption:    input.Caption,
		ImagePath:  input.ImagePath,
	}
	input.Ref.ApplyTo(item)

	if err := s.items.Create(ctx, item); err != nil {
		// Two tabs adding the same entity race to the insert; treat the
		// loser as the idempotent no-op it would have been a moment later.
		if db.IsUniqueViolation(err, "") {
			if winner, ferr := s.items.FindByReference(ctx, carousel.ID, refID); ferr == nil {
				s.metrics.IncToggle(input.Slug, string(OutcomeNoop))
				return &ToggleResult{Outcome: OutcomeNoop, CarouselID: carousel.ID, ItemID: &winner.ID}, nil
			}
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "attach carousel item")
	}

	s.metrics.IncToggle(input.Slug, string(OutcomeAdded))
	s.cache.Invalidate(ctx, input.Page, input.Slug)
	return &ToggleResult{Outcome: OutcomeAdded, CarouselID: carousel.ID, ItemID: &item.ID}, nil
}

func (s *service) removeMember(ctx context.Context, input MembershipInput, refID uuid.UUID) (*ToggleResult, error) {
	carousel, err := s.carousels.FindByPageSlug(ctx, input.Page, input.Slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.IncToggle(input.Slug, string(OutcomeNoop))
			return &ToggleResult{Outcome: OutcomeNoop}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve carousel")
	}

	item, err := s.items.FindByReference(ctx, carousel.ID, refID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.metrics.IncToggle(input.Slug, string(OutcomeNoop))
			return &ToggleResult{Outcome: OutcomeNoop, CarouselID: carousel.ID}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check carousel membership")
	}

	if err := s.items.Delete(ctx, item.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "detach carousel item")
	}
	if _, err := s.items.CloseGaps(ctx, carousel.ID, item.OrderIndex); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close order gaps")
	}
	s.metrics.IncGapClose()
	s.metrics.IncToggle(input.Slug, string(OutcomeRemoved))
	s.cache.Invalidate(ctx, input.Page, input.Slug)
	return &ToggleResult{Outcome: OutcomeRemoved, CarouselID: carousel.ID, ItemID: &item.ID}, nil
}

// SetSingleton replaces whatever a singleton slot currently holds with the
// given reference. Delete and insert run in one transaction so the slot never
// shows two entries.
func (s *service) SetSingleton(ctx context.Context, input SingletonInput) (*ToggleResult, error) {
	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}
	if carousels.SlotCardinality(input.Slug) != enums.SlotSingleton {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			"slot holds an ordered list; use the membership endpoint")
	}

	carousel, err := s.carousels.FindOrCreate(ctx, input.Page, input.Slug, input.Defaults)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve carousel")
	}

	item := &models.CarouselItem{
		CarouselID: carousel.ID,
		OrderIndex: 0,
		IsActive:   true,
		Caption:    input.Caption,
		ImagePath:  input.ImagePath,
	}
	input.Ref.ApplyTo(item)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.items.DeleteAllWithTx(tx, carousel.ID); err != nil {
			return err
		}
		return s.items.CreateWithTx(tx, item)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace singleton entry")
	}

	s.metrics.IncSingleton(input.Slug, "set")
	s.cache.Invalidate(ctx, input.Page, input.Slug)
	return &ToggleResult{Outcome: OutcomeAdded, CarouselID: carousel.ID, ItemID: &item.ID}, nil
}

// ClearSingleton empties a singleton slot. A slot that never materialized is
// already empty, so the call succeeds as a noop.
func (s *service) ClearSingleton(ctx context.Context, page enums.Page, slug string) (*ToggleResult, error) {
	if carousels.SlotCardinality(slug) != enums.SlotSingleton {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			"slot holds an ordered list; use the membership endpoint")
	}

	carousel, err := s.carousels.FindByPageSlug(ctx, page, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ToggleResult{Outcome: OutcomeNoop}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve carousel")
	}

	if err := s.items.DeleteAll(ctx, carousel.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear singleton entry")
	}
	s.metrics.IncSingleton(slug, "clear")
	s.cache.Invalidate(ctx, page, slug)
	return &ToggleResult{Outcome: OutcomeRemoved, CarouselID: carousel.ID}, nil
}
