package items

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
)

// Repository handles carousel item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to item operations.
func NewRepository(gdb *gorm.DB) *Repository {
	return &Repository{db: gdb}
}

// List returns a carousel's members ordered for display. Admin callers pass
// includeInactive to see soft-hidden rows.
func (r *Repository) List(ctx context.Context, carouselID uuid.UUID, includeInactive bool) ([]models.CarouselItem, error) {
	query := r.db.WithContext(ctx).Where("carousel_id = ?", carouselID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var items []models.CarouselItem
	if err := query.
		Order("order_index ASC").
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID loads a single item.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CarouselItem, error) {
	var item models.CarouselItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByReference locates the item in a carousel whose domain reference
// (ref_id or album_id) matches the given id.
func (r *Repository) FindByReference(ctx context.Context, carouselID, refID uuid.UUID) (*models.CarouselItem, error) {
	var item models.CarouselItem
	if err := r.db.WithContext(ctx).
		Where("carousel_id = ?", carouselID).
		Where("ref_id = ? OR album_id = ?", refID, refID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create persists a new item row.
func (r *Repository) Create(ctx context.Context, item *models.CarouselItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// CreateWithTx persists a new item using the provided transaction.
func (r *Repository) CreateWithTx(tx *gorm.DB, item *models.CarouselItem) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if item == nil {
		return fmt.Errorf("item is required")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return tx.Create(item).Error
}

// Update saves the provided item.
func (r *Repository) Update(ctx context.Context, item *models.CarouselItem) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes the item row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CarouselItem{}).Error
}

// DeleteAllWithTx clears every item in a carousel inside the transaction.
func (r *Repository) DeleteAllWithTx(tx *gorm.DB, carouselID uuid.UUID) error {
	if tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return tx.Where("carousel_id = ?", carouselID).Delete(&models.CarouselItem{}).Error
}

// DeleteAll clears every item in a carousel.
func (r *Repository) DeleteAll(ctx context.Context, carouselID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("carousel_id = ?", carouselID).Delete(&models.CarouselItem{}).Error
}

// CloseGaps shifts every item past the removed position down by one so the
// order_index range stays dense.
func (r *Repository) CloseGaps(ctx context.Context, carouselID uuid.UUID, removedOrderIndex int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.CarouselItem{}).
		Where("carousel_id = ? AND order_index > ?", carouselID, removedOrderIndex).
		UpdateColumn("order_index", gorm.Expr("order_index - 1"))
	return res.RowsAffected, res.Error
}

// NextOrderIndex returns the trailing position for an append.
func (r *Repository) NextOrderIndex(ctx context.Context, carouselID uuid.UUID) (int, error) {
	var max *int
	if err := r.db.WithContext(ctx).
		Model(&models.CarouselItem{}).
		Where("carousel_id = ?", carouselID).
		Select("MAX(order_index)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}
