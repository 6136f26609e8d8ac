package service

import (
	"context"
	"strconv"

	"digital-store-bot/internal/features/user/models"
	"digital-store-bot/internal/features/user/repository"
)

type UserService interface {
	// Track records an inbound interaction: create-or-refresh plus an
	// activity touch. Empty profile fields get placeholder values so a
	// user without a username still renders in listings.
	Track(ctx context.Context, id int64, username, firstName, lastName string) error
	ListActive(ctx context.Context) ([]*models.User, error)
	CountActive(ctx context.Context) (int, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Track(ctx context.Context, id int64, username, firstName, lastName string) error {
	if username == "" {
		username = placeholderUsername(id)
	}
	if firstName == "" {
		firstName = "Unknown"
	}

	user := &models.User{
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.repo.Upsert(ctx, user); err != nil {
		return err
	}

	return s.repo.TouchActivity(ctx, id)
}

func (s *userService) ListActive(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListActive(ctx)
}

func (s *userService) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}

func placeholderUsername(id int64) string {
	return "user_" + strconv.FormatInt(id, 10)
}
