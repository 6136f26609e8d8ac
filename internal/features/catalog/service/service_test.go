package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-store-bot/internal/features/catalog/repository"
	catalogsqlite "digital-store-bot/internal/features/catalog/repository/sqlite"
	"digital-store-bot/internal/platform/db"
)

func newTestService(t *testing.T) CatalogService {
	t.Helper()
	database, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewCatalogService(catalogsqlite.NewSQLiteRepository(database))
}

func TestAddAndByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	added, err := svc.Add(ctx, "Apps", "Stream Plus", "Ad-free", "299", "Premium access")
	require.NoError(t, err)
	require.NotZero(t, added.ID)

	got, err := svc.ByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stream Plus", got.Name)
	assert.Equal(t, "299", got.Price)
	assert.Equal(t, "Apps", got.Category)
}

func TestByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ByID(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Apps", "A1", "", "10", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Games", "G1", "", "20", "")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Apps", "A2", "", "30", "")
	require.NoError(t, err)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apps", "Games"}, categories)
}

func TestByCategoryIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Apps", "A1", "", "10", "")
	require.NoError(t, err)

	products, err := svc.ByCategory(ctx, "Apps")
	require.NoError(t, err)
	assert.Len(t, products, 1)

	products, err = svc.ByCategory(ctx, "apps")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteAbsentIDIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Delete(ctx, 999))

	added, err := svc.Add(ctx, "Apps", "A1", "", "10", "")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, added.ID))

	_, err = svc.ByID(ctx, added.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
