package carousels

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

func TestRepositoryFindOrCreateIsIdempotent(t *testing.T) {
	db := setupCarouselsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	slug := "hero-" + uuid.NewString()
	title := "Home Hero"

	first, err := repo.FindOrCreate(ctx, enums.PageHome, slug, CreateDefaults{Title: &title})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.True(t, first.IsActive, "new carousels start active")
	require.NotNil(t, first.Title)
	assert.Equal(t, title, *first.Title)

	otherTitle := "Should Not Apply"
	second, err := repo.FindOrCreate(ctx, enums.PageHome, slug, CreateDefaults{Title: &otherTitle})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same page/slug must resolve to the same row")
	require.NotNil(t, second.Title)
	assert.Equal(t, title, *second.Title, "defaults only apply on creation")
}

func TestRepositoryFindOrCreateScopedByPage(t *testing.T) {
	db := setupCarouselsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	slug := "featured-" + uuid.NewString()

	home, err := repo.FindOrCreate(ctx, enums.PageHome, slug, CreateDefaults{})
	require.NoError(t, err)
	healing, err := repo.FindOrCreate(ctx, enums.PageHealing, slug, CreateDefaults{})
	require.NoError(t, err)

	assert.NotEqual(t, home.ID, healing.ID, "same slug on different pages is two carousels")
}

func TestRepositoryFindByPageSlugNotFound(t *testing.T) {
	db := setupCarouselsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByPageSlug(context.Background(), enums.PageVlogs, "missing-"+uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryDeleteRemovesItems(t *testing.T) {
	db := setupCarouselsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	carousel, err := repo.FindOrCreate(ctx, enums.PageStorefront, "picks-"+uuid.NewString(), CreateDefaults{})
	require.NoError(t, err)

	item := &models.CarouselItem{
		ID:         uuid.New(),
		CarouselID: carousel.ID,
		Kind:       enums.ItemKindVideo,
		IsActive:   true,
	}
	videoID := "yt-cleanup"
	item.VideoID = &videoID
	require.NoError(t, db.Create(item).Error)

	require.NoError(t, repo.Delete(ctx, carousel.ID))

	var count int64
	require.NoError(t, db.Model(&models.CarouselItem{}).Where("carousel_id = ?", carousel.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count, "items must not outlive their carousel")

	_, err = repo.FindByID(ctx, carousel.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListActiveItemsOrdersAndFilters(t *testing.T) {
	db := setupCarouselsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	carousel, err := repo.FindOrCreate(ctx, enums.PageVlogs, "latest-"+uuid.NewString(), CreateDefaults{})
	require.NoError(t, err)

	mkItem := func(orderIndex int, active bool) *models.CarouselItem {
		videoID := "yt-" + uuid.NewString()
		return &models.CarouselItem{
			ID:         uuid.New(),
			CarouselID: carousel.ID,
			Kind:       enums.ItemKindVideo,
			VideoID:    &videoID,
			OrderIndex: orderIndex,
			IsActive:   active,
		}
	}

	second := mkItem(1, true)
	hidden := mkItem(0, false)
	first := mkItem(0, true)
	for _, item := range []*models.CarouselItem{second, hidden, first} {
		require.NoError(t, db.Create(item).Error)
	}

	items, err := repo.ListActiveItems(ctx, carousel.ID)
	require.NoError(t, err)
	require.Len(t, items, 2, "inactive items are not rendered")
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}
