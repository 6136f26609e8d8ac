package repository

import (
	"context"
	"errors"

	"digital-store-bot/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	// Upsert creates the user or refreshes profile fields and activity.
	// Last write wins; joined_date and is_blocked survive updates.
	Upsert(ctx context.Context, user *models.User) error
	TouchActivity(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// ListActive returns all non-blocked users.
	ListActive(ctx context.Context) ([]*models.User, error)
	CountActive(ctx context.Context) (int, error)
}
