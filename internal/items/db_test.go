package items

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupItemsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	carousels := `
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
	carouselItems := `
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
	require.NoError(t, db.Exec(carousels).Error)
	require.NoError(t, db.Exec(carouselItems).Error)
	require.NoError(t, db.Exec(membershipIdx).Error)
	require.NoError(t, db.Exec(albumIdx).Error)
	return db
}
