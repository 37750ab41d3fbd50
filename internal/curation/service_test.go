package curation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/internal/items"
	pkgdb "github.com/gracemeadow/meadowlane-backend/pkg/db"
	"github.com/gracemeadow/meadowlane-backend/pkg/db/models"
	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	pkgerrors "github.com/gracemeadow/meadowlane-backend/pkg/errors"
)

func setupCurationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	carouselsDDL := `
CREATE TABLE IF NOT EXISTS carousels (
  id TEXT PRIMARY KEY,
  page TEXT NOT NULL,
  slug TEXT NOT NULL,
  title TEXT,
  description TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (page, slug)
);`
	itemsDDL := `
CREATE TABLE IF NOT EXISTS carousel_items (
  id TEXT PRIMARY KEY,
  carousel_id TEXT NOT NULL,
  kind TEXT NOT NULL,
  ref_id TEXT,
  album_id TEXT,
  video_id TEXT,
  link_url TEXT,
  order_index INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  is_featured INTEGER NOT NULL DEFAULT 0,
  caption TEXT,
  image_path TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`

	membershipIdx := `
CREATE UNIQUE INDEX IF NOT EXISTS carousel_items_carousel_ref_key
  ON carousel_items (carousel_id, ref_id) WHERE ref_id IS NOT NULL;`
	albumIdx := `
CREATE UNIQUE INDEX IF NOT EXISTS carousel_items_carousel_album_key
  ON carousel_items (carousel_id, album_id) WHERE album_id IS NOT NULL;`

	require.NoError(t, db.Exec(carouselsDDL).Error)
	require.NoError(t, db.Exec(itemsDDL).Error)
	require.NoError(t, db.Exec(membershipIdx).Error)
	require.NoError(t, db.Exec(albumIdx).Error)
	return db
}

type gormTxRunner struct {
	db *gorm.DB
}

func (r gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func newTestService(t *testing.T, db *gorm.DB) (Service, *items.Repository, *carousels.Repository) {
	t.Helper()
	carouselRepo := carousels.NewRepository(db)
	itemRepo := items.NewRepository(db)
	svc, err := NewService(ServiceParams{
		CarouselRepo: carouselRepo,
		ItemRepo:     itemRepo,
		Tx:           gormTxRunner{db: db},
	})
	require.NoError(t, err)
	return svc, itemRepo, carouselRepo
}

func countItems(t *testing.T, db *gorm.DB, carouselID uuid.UUID) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.CarouselItem{}).Where("carousel_id = ?", carouselID).Count(&count).Error)
	return count
}

func TestSetMembershipAddAndRemove(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, itemRepo, _ := newTestService(t, db)
	ctx := context.Background()

	slug := "reader-picks-" + uuid.NewString()
	recipeID := uuid.New()
	input := MembershipInput{
		Page: enums.PageRecipes,
		Slug: slug,
		Ref:  items.EntityRef(enums.ItemKindRecipe, recipeID),
		On:   true,
	}

	added, err := svc.SetMembership(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, added.Outcome)
	require.NotNil(t, added.ItemID)

	attached, err := itemRepo.FindByID(ctx, *added.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 0, attached.OrderIndex, "first member appends at zero")
	assert.True(t, attached.IsActive)

	input.On = false
	removed, err := svc.SetMembership(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, removed.Outcome)
	assert.EqualValues(t, 0, countItems(t, db, added.CarouselID))
}

func TestSetMembershipIsIdempotentBothWays(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)
	ctx := context.Background()

	slug := "reader-picks-" + uuid.NewString()
	recipeID := uuid.New()
	add := MembershipInput{
		Page: enums.PageRecipes,
		Slug: slug,
		Ref:  items.EntityRef(enums.ItemKindRecipe, recipeID),
		On:   true,
	}

	first, err := svc.SetMembership(ctx, add)
	require.NoError(t, err)
	require.Equal(t, OutcomeAdded, first.Outcome)

	for i := 0; i < 3; i++ {
		again, err := svc.SetMembership(ctx, add)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNoop, again.Outcome, "repeat add must be a noop")
		assert.Equal(t, first.CarouselID, again.CarouselID)
	}
	assert.EqualValues(t, 1, countItems(t, db, first.CarouselID))

	remove := add
	remove.On = false
	removed, err := svc.SetMembership(ctx, remove)
	require.NoError(t, err)
	require.Equal(t, OutcomeRemoved, removed.Outcome)

	for i := 0; i < 3; i++ {
		again, err := svc.SetMembership(ctx, remove)
		require.NoError(t, err)
		assert.Equal(t, OutcomeNoop, again.Outcome, "repeat remove must be a noop")
	}
}

func TestSetMembershipRemoveFromMissingCarouselIsNoop(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)

	result, err := svc.SetMembership(context.Background(), MembershipInput{
		Page: enums.PageStorefront,
		Slug: "never-created-" + uuid.NewString(),
		Ref:  items.EntityRef(enums.ItemKindProduct, uuid.New()),
		On:   false,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, result.Outcome)
}

func TestSetMembershipClosesGapsOnRemoval(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, itemRepo, _ := newTestService(t, db)
	ctx := context.Background()

	slug := "reader-picks-" + uuid.NewString()
	recipeIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	var carouselID uuid.UUID
	for _, id := range recipeIDs {
		result, err := svc.SetMembership(ctx, MembershipInput{
			Page: enums.PageRecipes,
			Slug: slug,
			Ref:  items.EntityRef(enums.ItemKindRecipe, id),
			On:   true,
		})
		require.NoError(t, err)
		carouselID = result.CarouselID
	}

	_, err := svc.SetMembership(ctx, MembershipInput{
		Page: enums.PageRecipes,
		Slug: slug,
		Ref:  items.EntityRef(enums.ItemKindRecipe, recipeIDs[1]),
		On:   false,
	})
	require.NoError(t, err)

	remaining, err := itemRepo.List(ctx, carouselID, true)
	require.NoError(t, err)
	require.Len(t, remaining, 3)
	for i, item := range remaining {
		assert.Equal(t, i, item.OrderIndex, "survivors keep a dense order")
	}
}

func TestSetMembershipRejectsSingletonSlugs(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)

	_, err := svc.SetMembership(context.Background(), MembershipInput{
		Page: enums.PageHealing,
		Slug: "healing-featured-video",
		Ref:  items.EntityRef(enums.ItemKindRecipe, uuid.New()),
		On:   true,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestSetMembershipRejectsNonEntityKinds(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)

	_, err := svc.SetMembership(context.Background(), MembershipInput{
		Page: enums.PageVlogs,
		Slug: "reader-picks-" + uuid.NewString(),
		Ref:  items.VideoRef("yt-abc"),
		On:   true,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSetSingletonReplacesCurrentEntry(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, itemRepo, _ := newTestService(t, db)
	ctx := context.Background()

	firstRecipe := uuid.New()
	result, err := svc.SetSingleton(ctx, SingletonInput{
		Page: enums.PageRecipes,
		Slug: "recipes-weekly-pick",
		Ref:  items.EntityRef(enums.ItemKindRecipe, firstRecipe),
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeAdded, result.Outcome)

	secondRecipe := uuid.New()
	result, err = svc.SetSingleton(ctx, SingletonInput{
		Page: enums.PageRecipes,
		Slug: "recipes-weekly-pick",
		Ref:  items.EntityRef(enums.ItemKindRecipe, secondRecipe),
	})
	require.NoError(t, err)

	rows, err := itemRepo.List(ctx, result.CarouselID, true)
	require.NoError(t, err)
	require.Len(t, rows, 1, "singleton slot never holds more than one entry")
	require.NotNil(t, rows[0].RefID)
	assert.Equal(t, secondRecipe, *rows[0].RefID)
	assert.Equal(t, 0, rows[0].OrderIndex)
	assert.True(t, rows[0].IsActive)
}

func TestSetSingletonRejectsOrderedSlugs(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)

	_, err := svc.SetSingleton(context.Background(), SingletonInput{
		Page: enums.PageRecipes,
		Slug: "reader-picks-" + uuid.NewString(),
		Ref:  items.EntityRef(enums.ItemKindRecipe, uuid.New()),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
}

func TestClearSingleton(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)
	ctx := context.Background()

	result, err := svc.SetSingleton(ctx, SingletonInput{
		Page: enums.PageHealing,
		Slug: "healing-featured-video",
		Ref:  items.VideoRef("yt-healing"),
	})
	require.NoError(t, err)

	cleared, err := svc.ClearSingleton(ctx, enums.PageHealing, "healing-featured-video")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, cleared.Outcome)
	assert.EqualValues(t, 0, countItems(t, db, result.CarouselID))

	again, err := svc.ClearSingleton(ctx, enums.PageHealing, "healing-featured-video")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, again.Outcome, "an existing empty slot clears cleanly")
}

func TestClearSingletonMissingCarouselIsNoop(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, _, _ := newTestService(t, db)

	result, err := svc.ClearSingleton(context.Background(), enums.PageHome, "home-hero-video")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, result.Outcome)
}

func TestSetMembershipAddSurvivesInsertRace(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, itemRepo, carouselRepo := newTestService(t, db)
	ctx := context.Background()

	slug := "garden-notes-" + uuid.NewString()
	carousel, err := carouselRepo.FindOrCreate(ctx, enums.PageHome, slug, carousels.CreateDefaults{})
	require.NoError(t, err)

	recipeID := uuid.New()
	first := &models.CarouselItem{CarouselID: carousel.ID, OrderIndex: 0, IsActive: true}
	items.EntityRef(enums.ItemKindRecipe, recipeID).ApplyTo(first)
	require.NoError(t, itemRepo.Create(ctx, first))

	// An insert that slipped past the membership lookup must hit the unique
	// index instead of producing a second row for the same entity.
	second := &models.CarouselItem{CarouselID: carousel.ID, OrderIndex: 1, IsActive: true}
	items.EntityRef(enums.ItemKindRecipe, recipeID).ApplyTo(second)
	err = itemRepo.Create(ctx, second)
	require.Error(t, err)
	assert.True(t, pkgdb.IsUniqueViolation(err, ""))

	result, err := svc.SetMembership(ctx, MembershipInput{
		Page: enums.PageHome,
		Slug: slug,
		Ref:  items.EntityRef(enums.ItemKindRecipe, recipeID),
		On:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, result.Outcome)
	assert.EqualValues(t, 1, countItems(t, db, carousel.ID))
}

func TestSetMembershipRepositionsExistingMember(t *testing.T) {
	db := setupCurationTestDB(t)
	svc, itemRepo, carouselRepo := newTestService(t, db)
	ctx := context.Background()

	slug := "garden-notes-" + uuid.NewString()
	recipeID := uuid.New()

	added, err := svc.SetMembership(ctx, MembershipInput{
		Page: enums.PageHome,
		Slug: slug,
		Ref:  items.EntityRef(enums.ItemKindRecipe, recipeID),
		On:   true,
	})
	require.NoError(t, err)
	require.Equal(t, OutcomeAdded, added.Outcome)

	newIndex := 7
	result, err := svc.SetMembership(ctx, MembershipInput{
		Page:       enums.PageHome,
		Slug:       slug,
		Ref:        items.EntityRef(enums.ItemKindRecipe, recipeID),
		On:         true,
		OrderIndex: &newIndex,
	})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, result.Outcome)

	carousel, err := carouselRepo.FindByPageSlug(ctx, enums.PageHome, slug)
	require.NoError(t, err)
	item, err := itemRepo.FindByReference(ctx, carousel.ID, recipeID)
	require.NoError(t, err)
	assert.Equal(t, 7, item.OrderIndex)
	assert.EqualValues(t, 1, countItems(t, db, carousel.ID))
}
