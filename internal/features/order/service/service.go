package service

import (
	"context"

	"digital-store-bot/internal/features/order/models"
	"digital-store-bot/internal/features/order/repository"
)

type OrderService interface {
	// AddIntent records a purchase intent with the amount copied from
	// the product's current price. The copy is the only snapshot; later
	// price edits do not retroactively affect the row.
	AddIntent(ctx context.Context, userID int64, productName, amount string) (int64, error)
	// AddScreenshot records an uploaded payment screenshot as its own
	// pending row. No operation links it to a prior intent.
	AddScreenshot(ctx context.Context, userID int64, fileID string) (int64, error)
	History(ctx context.Context, userID int64) ([]*models.Order, error)
	Count(ctx context.Context) (int, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) AddIntent(ctx context.Context, userID int64, productName, amount string) (int64, error) {
	return s.repo.Create(ctx, &models.Order{
		UserID:      userID,
		ProductName: productName,
		Amount:      amount,
	})
}

func (s *orderService) AddScreenshot(ctx context.Context, userID int64, fileID string) (int64, error) {
	return s.repo.Create(ctx, &models.Order{
		UserID:           userID,
		ProductName:      models.ScreenshotProductName,
		Amount:           "0",
		ScreenshotFileID: fileID,
	})
}

func (s *orderService) History(ctx context.Context, userID int64) ([]*models.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *orderService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
