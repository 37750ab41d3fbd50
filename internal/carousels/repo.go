package carousels

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

const pageSlugConstraint = "carousels_page_slug_key"

// Repository handles carousel persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to carousel operations.
func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

// FindByPageSlug loads the carousel for a (page, slug) pair.
// gorm.ErrRecordNotFound passes through untouched; absence is a normal outcome.
func (r *Repository) FindByPageSlug(ctx context.Context, page enums.Page, slug string) (*models.Carousel, error) {
	var carousel models.Carousel
	if err := r.db.WithContext(ctx).
		Where("page = ? AND slug = ?", page, slug).
		First(&carousel).Error; err != nil {
		return nil, err
	}
	return &carousel, nil
}

// FindByID loads a carousel by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Carousel, error) {
	var carousel models.Carousel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&carousel).Error; err != nil {
		return nil, err
	}
	return &carousel, nil
}

// FindOrCreate resolves (page, slug) to a carousel, creating it with the
// supplied defaults when absent. Two callers racing on the same pair can both
// miss the lookup; the loser of the insert re-reads the winner's row instead
// of surfacing the unique violation.
func (r *Repository) FindOrCreate(ctx context.Context, page enums.Page, slug string, defaults CreateDefaults) (*models.Carousel, error) {
	carousel, err := r.FindByPageSlug(ctx, page, slug)
	if err == nil {
		return carousel, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &models.Carousel{
		ID:          uuid.New(),
		Page:        page,
		Slug:        slug,
		Title:       defaults.Title,
		Description: defaults.Description,
		IsActive:    true,
	}
	createErr := r.db.WithContext(ctx).Create(fresh).Error
	if createErr == nil {
		return fresh, nil
	}
	if db.IsUniqueViolation(createErr, pageSlugConstraint) {
		// someone else created it between our lookup and insert
		return r.FindByPageSlug(ctx, page, slug)
	}
	return nil, createErr
}

// Update saves the provided carousel.
func (r *Repository) Update(ctx context.Context, carousel *models.Carousel) error {
	if carousel == nil {
		return fmt.Errorf("carousel is required")
	}
	return r.db.WithContext(ctx).Save(carousel).Error
}

// Delete removes the carousel and its items. Items go first so stores without
// enforced cascades end up in the same state.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("carousel_id = ?", id).Delete(&models.CarouselItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Carousel{}).Error
	})
}

// ListByPage returns carousels for a page, most recently updated first.
// A non-empty slug narrows the listing to that slot.
func (r *Repository) ListByPage(ctx context.Context, page enums.Page, slug string) ([]models.Carousel, error) {
	query := r.db.WithContext(ctx).Where("page = ?", page)
	if slug != "" {
		query = query.Where("slug = ?", slug)
	}
	var carousels []models.Carousel
	if err := query.Order("updated_at DESC").Find(&carousels).Error; err != nil {
		return nil, err
	}
	return carousels, nil
}

// ListActiveItems returns the carousel's active members ordered for display.
// Insertion time breaks order_index ties.
func (r *Repository) ListActiveItems(ctx context.Context, carouselID uuid.UUID) ([]models.CarouselItem, error) {
	var items []models.CarouselItem
	if err := r.db.WithContext(ctx).
		Where("carousel_id = ? AND is_active = ?", carouselID, true).
		Order("order_index ASC").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
