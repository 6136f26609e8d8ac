package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingssqlite "digital-store-bot/internal/features/settings/repository/sqlite"
	"digital-store-bot/internal/platform/db"
)

func newTestService(t *testing.T) SettingsService {
	t.Helper()
	database, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSettingsService(settingssqlite.NewSQLiteRepository(database))
}

func TestGetUnsetKeyReturnsFallback(t *testing.T) {
	svc := newTestService(t)

	value, err := svc.Get(context.Background(), KeyBioMessage, "default bio")
	require.NoError(t, err)
	assert.Equal(t, "default bio", value)
}

func TestSetThenGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, KeyBioMessage, "hello"))

	value, err := svc.Get(ctx, KeyBioMessage, "default bio")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestLookupDistinguishesEmptyFromUnset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, ok, err := svc.Lookup(ctx, KeyBioMessage)
	require.NoError(t, err)
	assert.False(t, ok)

	// A deliberately cleared value is still a stored value.
	require.NoError(t, svc.Set(ctx, KeyBioMessage, ""))

	value, ok, err := svc.Lookup(ctx, KeyBioMessage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestSetOverwrites(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, KeyBioMessage, "first"))
	require.NoError(t, svc.Set(ctx, KeyBioMessage, "second"))

	value, err := svc.Get(ctx, KeyBioMessage, "")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}
