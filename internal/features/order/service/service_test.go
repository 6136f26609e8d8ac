package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-store-bot/internal/features/order/models"
	ordersqlite "digital-store-bot/internal/features/order/repository/sqlite"
	"digital-store-bot/internal/platform/db"
)

func newTestService(t *testing.T) OrderService {
	t.Helper()
	database, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewOrderService(ordersqlite.NewSQLiteRepository(database))
}

func TestIntentAndScreenshotAreSeparateRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddIntent(ctx, 100, "Stream Plus", "299")
	require.NoError(t, err)
	_, err = svc.AddScreenshot(ctx, 100, "file-abc")
	require.NoError(t, err)

	orders, err := svc.History(ctx, 100)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	intent := orders[0]
	assert.Equal(t, "Stream Plus", intent.ProductName)
	assert.Equal(t, "299", intent.Amount)
	assert.Equal(t, models.StatusPending, intent.Status)
	assert.Empty(t, intent.ScreenshotFileID)

	shot := orders[1]
	assert.Equal(t, models.ScreenshotProductName, shot.ProductName)
	assert.Equal(t, "0", shot.Amount)
	assert.Equal(t, models.StatusPending, shot.Status)
	assert.Equal(t, "file-abc", shot.ScreenshotFileID)
}

func TestHistoryScopedToUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddIntent(ctx, 100, "Stream Plus", "299")
	require.NoError(t, err)
	_, err = svc.AddIntent(ctx, 200, "Cricket Pro", "199")
	require.NoError(t, err)

	orders, err := svc.History(ctx, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(100), orders[0].UserID)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIntentAmountIsSnapshot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddIntent(ctx, 100, "Stream Plus", "299")
	require.NoError(t, err)
	_, err = svc.AddIntent(ctx, 100, "Stream Plus", "349")
	require.NoError(t, err)

	orders, err := svc.History(ctx, 100)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "299", orders[0].Amount)
	assert.Equal(t, "349", orders[1].Amount)
}
