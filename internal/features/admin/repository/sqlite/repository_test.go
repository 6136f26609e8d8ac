package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-store-bot/internal/features/admin/models"
	"digital-store-bot/internal/platform/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestExistsFlipsWithUpsertAndDelete(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	ok, err := repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Upsert(ctx, &models.Admin{UserID: 42, Username: "bob", AddedBy: 1}))

	ok, err = repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(ctx, 42))

	ok, err = repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.Admin{UserID: 42, Username: "bob", AddedBy: 1}))
	require.NoError(t, repo.Upsert(ctx, &models.Admin{UserID: 42, Username: "bobby", AddedBy: 1}))

	admins, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "bobby", admins[0].Username)
}

func TestDeleteAbsentAdminIsNoop(t *testing.T) {
	repo := NewSQLiteRepository(newTestDB(t))

	assert.NoError(t, repo.Delete(context.Background(), 999))
}
