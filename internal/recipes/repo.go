package recipes

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/pagination"
)

// Repository wraps recipe persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a recipe repository backed by the given DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads one recipe.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindBySlug loads one recipe by its public slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a recipe.
func (r *Repository) Create(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(recipe).Error
}

// Update persists the full row.
func (r *Repository) Update(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// Delete removes a recipe row. Carousel items referencing it are not touched;
// the render path skips references it cannot resolve.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Recipe{}).Error
}

// List pages through recipes newest first using a created_at/id keyset cursor.
func (r *Repository) List(ctx context.Context, query ListQuery) ([]models.Recipe, string, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)
	if limitWithBuffer <= pageSize {
		limitWithBuffer = pageSize + 1
	}

	cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
	if err != nil {
		return nil, "", err
	}

	qb := r.db.WithContext(ctx).Model(&models.Recipe{})
	if query.Filters.PublishedOnly {
		qb = qb.Where("is_published = ?", true)
	}
	if tag := strings.TrimSpace(query.Filters.Tag); tag != "" {
		qb = qb.Where("? = ANY(tags)", tag)
	}
	if search := strings.TrimSpace(query.Filters.Query); search != "" {
		qb = qb.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Recipe
	if err := qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, nextCursor, nil
}
