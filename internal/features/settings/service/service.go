package service

import (
	"context"
	"errors"

	"digital-store-bot/internal/features/settings/repository"
)

// KeyBioMessage holds the storefront greeting shown by /start.
const KeyBioMessage = "bio_message"

type SettingsService interface {
	// Get returns the stored value, or fallback when the key is unset.
	// Absence is never an error.
	Get(ctx context.Context, key, fallback string) (string, error)
	// Lookup reports whether the key is stored at all, so a stored
	// empty value is distinguishable from absence.
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context, key, fallback string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return fallback, nil
		}
		return "", err
	}

	return value, nil
}

func (s *settingsService) Lookup(ctx context.Context, key string) (string, bool, error) {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}
