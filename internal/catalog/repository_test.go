package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  tags TEXT,
  price INTEGER NOT NULL,
  currency TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0,
  image TEXT,
  short_description TEXT,
  long_description TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(products).Error)

	return db
}

func TestRepositorySeedAndList(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, SeedProducts()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedProducts())), count)

	rows, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(SeedProducts()))

	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Position, rows[i].Position, "list must keep seed order")
	}
	assert.Equal(t, "kc001", rows[0].ID)
}

func TestRepositorySeedIsIdempotent(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, SeedProducts()))
	require.NoError(t, repo.Seed(ctx, SeedProducts()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(SeedProducts())), count)
}

func TestRepositoryGetProduct(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, SeedProducts()))

	row, err := repo.GetProduct(ctx, "kc002")
	require.NoError(t, err)
	assert.Equal(t, "Bridal Rida - Ivory Embroidery", row.Name)
	assert.Equal(t, 14999, row.Price)
	assert.Contains(t, []string(row.Tags), "bridal ridas")

	_, err = repo.GetProduct(ctx, "kc999")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSeedIfEmptySkipsPopulatedCatalog(t *testing.T) {
	repo := NewRepository(setupCatalogTestDB(t))
	ctx := context.Background()

	seeded, err := SeedIfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = SeedIfEmpty(ctx, repo)
	require.NoError(t, err)
	assert.False(t, seeded, "second boot must not reseed")
}
