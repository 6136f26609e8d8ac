package repository

import (
	"context"

	"digital-store-bot/internal/features/admin/models"
)

type AdminRepository interface {
	// Upsert grants admin membership; re-granting refreshes the record.
	Upsert(ctx context.Context, admin *models.Admin) error
	// Delete revokes membership. Revoking a non-admin is a no-op.
	Delete(ctx context.Context, userID int64) error
	Exists(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context) ([]*models.Admin, error)
}
