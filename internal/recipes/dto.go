package recipes

import (
	"time"

	"github.com/google/uuid"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/pagination"
)

// RecipeDTO is the recipe payload returned to clients.
type RecipeDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     *string   `json:"summary,omitempty"`
	ImagePath   *string   `json:"image_path,omitempty"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRecipeInput captures a new recipe.
type CreateRecipeInput struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug" validate:"required"`
	Summary   *string  `json:"summary"`
	ImagePath *string  `json:"image_path"`
	Tags      []string `json:"tags"`
}

// UpdateRecipeInput is a partial edit.
type UpdateRecipeInput struct {
	Title       *string   `json:"title"`
	Summary     *string   `json:"summary"`
	ImagePath   *string   `json:"image_path"`
	Tags        *[]string `json:"tags"`
	IsPublished *bool     `json:"is_published"`
}

// ListFilters describe the supported filter knobs for the recipe list.
type ListFilters struct {
	Tag           string
	Query         string
	PublishedOnly bool
}

// ListQuery pairs filters with cursor pagination.
type ListQuery struct {
	Filters    ListFilters
	Pagination pagination.Params
}

// ListResult is one page of recipes plus the cursor for the next.
type ListResult struct {
	Recipes    []RecipeDTO `json:"recipes"`
	NextCursor string      `json:"next_cursor,omitempty"`
}

func toDTO(recipe *models.Recipe) RecipeDTO {
	tags := []string(recipe.Tags)
	if tags == nil {
		tags = []string{}
	}
	return RecipeDTO{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Slug:        recipe.Slug,
		Summary:     recipe.Summary,
		ImagePath:   recipe.ImagePath,
		Tags:        tags,
		IsPublished: recipe.IsPublished,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}
