package repository

import (
	"context"
	"errors"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingsRepository is a flat key/value namespace. Writes are
// last-write-wins upserts; there is no optimistic concurrency control.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
