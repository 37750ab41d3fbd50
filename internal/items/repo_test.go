package items

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
)

func mustCreateItemsCarousel(t *testing.T, db *gorm.DB) *models.Carousel {
	t.Helper()
	carousel := &models.Carousel{
		ID:       uuid.New(),
		Page:     enums.PageRecipes,
		Slug:     "weekly-favorites-" + uuid.NewString(),
		IsActive: true,
	}
	require.NoError(t, db.Create(carousel).Error)
	return carousel
}

func mustAttachItem(t *testing.T, repo *Repository, carouselID uuid.UUID, orderIndex int) *models.CarouselItem {
	t.Helper()
	item := &models.CarouselItem{
		CarouselID: carouselID,
		OrderIndex: orderIndex,
		IsActive:   true,
	}
	EntityRef(enums.ItemKindRecipe, uuid.New()).ApplyTo(item)
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func TestRepositoryNextOrderIndex(t *testing.T) {
	db := setupItemsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	carousel := mustCreateItemsCarousel(t, db)

	next, err := repo.NextOrderIndex(ctx, carousel.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, next, "empty carousel should start at zero")

	mustAttachItem(t, repo, carousel.ID, 0)
	mustAttachItem(t, repo, carousel.ID, 1)

	next, err = repo.NextOrderIndex(ctx, carousel.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestRepositoryCloseGapsKeepsIndexesDense(t *testing.T) {
	db := setupItemsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	carousel := mustCreateItemsCarousel(t, db)

	items := make([]*models.CarouselItem, 0, 4)
	for i := 0; i < 4; i++ {
		items = append(items, mustAttachItem(t, repo, carousel.ID, i))
	}

	removed := items[1]
	require.NoError(t, repo.Delete(ctx, removed.ID))

	shifted, err := repo.CloseGaps(ctx, carousel.ID, removed.OrderIndex)
	require.NoError(t, err)
	assert.EqualValues(t, 2, shifted, "two items sat behind the removed index")

	remaining, err := repo.List(ctx, carousel.ID, true)
	require.NoError(t, err)
	require.Len(t, remaining, 3)
	for i, item := range remaining {
		assert.Equal(t, i, item.OrderIndex, "indexes should stay dense after removal")
	}
}

func TestRepositoryCloseGapsLeavesEarlierItemsAlone(t *testing.T) {
	db := setupItemsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	carousel := mustCreateItemsCarousel(t, db)

	first := mustAttachItem(t, repo, carousel.ID, 0)
	second := mustAttachItem(t, repo, carousel.ID, 1)
	third := mustAttachItem(t, repo, carousel.ID, 2)

	require.NoError(t, repo.Delete(ctx, third.ID))
	shifted, err := repo.CloseGaps(ctx, carousel.ID, third.OrderIndex)
	require.NoError(t, err)
	assert.EqualValues(t, 0, shifted, "removing the tail shifts nothing")

	for _, want := range []struct {
		id    uuid.UUID
		index int
	}{{first.ID, 0}, {second.ID, 1}} {
		got, err := repo.FindByID(ctx, want.id)
		require.NoError(t, err)
		assert.Equal(t, want.index, got.OrderIndex)
	}
}

func TestRepositoryFindByReference(t *testing.T) {
	db := setupItemsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	carousel := mustCreateItemsCarousel(t, db)

	recipeID := uuid.New()
	item := &models.CarouselItem{CarouselID: carousel.ID, OrderIndex: 0, IsActive: true}
	EntityRef(enums.ItemKindRecipe, recipeID).ApplyTo(item)
	require.NoError(t, repo.Create(ctx, item))

	albumID := uuid.New()
	albumItem := &models.CarouselItem{CarouselID: carousel.ID, OrderIndex: 1, IsActive: true}
	AlbumRef(albumID).ApplyTo(albumItem)
	require.NoError(t, repo.Create(ctx, albumItem))

	found, err := repo.FindByReference(ctx, carousel.ID, recipeID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	foundAlbum, err := repo.FindByReference(ctx, carousel.ID, albumID)
	require.NoError(t, err)
	assert.Equal(t, albumItem.ID, foundAlbum.ID)

	_, err = repo.FindByReference(ctx, carousel.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListOrdersAndFiltersInactive(t *testing.T) {
	db := setupItemsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	carousel := mustCreateItemsCarousel(t, db)

	active := mustAttachItem(t, repo, carousel.ID, 1)
	first := mustAttachItem(t, repo, carousel.ID, 0)

	inactive := &models.CarouselItem{CarouselID: carousel.ID, OrderIndex: 2, IsActive: false}
	VideoRef("yt-hidden").ApplyTo(inactive)
	require.NoError(t, repo.Create(ctx, inactive))

	visible, err := repo.List(ctx, carousel.ID, false)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, first.ID, visible[0].ID, "order_index should drive display order")
	assert.Equal(t, active.ID, visible[1].ID)

	all, err := repo.List(ctx, carousel.ID, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
