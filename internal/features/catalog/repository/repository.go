package repository

import (
	"context"
	"errors"

	"digital-store-bot/internal/features/catalog/models"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	// Create inserts the product and returns its fresh id.
	Create(ctx context.Context, product *models.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetAll(ctx context.Context) ([]*models.Product, error)
	// GetByCategory matches the category string exactly, case-sensitive.
	GetByCategory(ctx context.Context, category string) ([]*models.Product, error)
	// Delete is idempotent; deleting a nonexistent id is a silent no-op.
	Delete(ctx context.Context, id int64) error
}
