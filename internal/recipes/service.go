package recipes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

type recipeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	FindBySlug(ctx context.Context, slug string) (*models.Recipe, error)
	Create(ctx context.Context, recipe *models.Recipe) error
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query ListQuery) ([]models.Recipe, string, error)
}

// Service owns recipe CRUD.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)
	GetBySlug(ctx context.Context, slug string) (*RecipeDTO, error)
	Create(ctx context.Context, input CreateRecipeInput) (*RecipeDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateRecipeInput) (*RecipeDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, query ListQuery) (*ListResult, error)
}

type service struct {
	repo recipeRepository
}

// NewService builds a recipe service.
func NewService(repo recipeRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "recipe repo is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*RecipeDTO, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	dto := toDTO(recipe)
	return &dto, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*RecipeDTO, error) {
	recipe, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	dto := toDTO(recipe)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateRecipeInput) (*RecipeDTO, error) {
	recipe := &models.Recipe{
		Title:     input.Title,
		Slug:      input.Slug,
		Summary:   input.Summary,
		ImagePath: input.ImagePath,
		Tags:      pq.StringArray(input.Tags),
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		if db.IsUniqueViolation(err, "recipes_slug_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "recipe slug already in use").
				WithDetails(map[string]any{"slug": input.Slug})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create recipe")
	}
	dto := toDTO(recipe)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateRecipeInput) (*RecipeDTO, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err)
	}
	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Summary != nil {
		recipe.Summary = input.Summary
	}
	if input.ImagePath != nil {
		recipe.ImagePath = input.ImagePath
	}
	if input.Tags != nil {
		recipe.Tags = pq.StringArray(*input.Tags)
	}
	if input.IsPublished != nil {
		recipe.IsPublished = *input.IsPublished
	}
	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update recipe")
	}
	dto := toDTO(recipe)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapLookupErr(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete recipe")
	}
	return nil
}

func (s *service) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	rows, nextCursor, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list recipes")
	}
	dtos := make([]RecipeDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDTO(&rows[i]))
	}
	return &ListResult{Recipes: dtos, NextCursor: nextCursor}, nil
}

func mapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load recipe")
}
