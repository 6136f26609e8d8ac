package repository

import (
	"context"

	"digital-store-bot/internal/features/order/models"
)

type OrderRepository interface {
	// Create appends an order row and returns its fresh id.
	Create(ctx context.Context, order *models.Order) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
}
