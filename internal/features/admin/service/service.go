package service

import (
	"context"

	"digital-store-bot/internal/features/admin/models"
	"digital-store-bot/internal/features/admin/repository"
)

type AdminService interface {
	Grant(ctx context.Context, userID int64, username string, grantedBy int64) error
	Revoke(ctx context.Context, userID int64) error
	// IsAdmin is re-evaluated on every privileged action; revocation
	// takes effect on the very next check.
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context) ([]*models.Admin, error)
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) Grant(ctx context.Context, userID int64, username string, grantedBy int64) error {
	return s.repo.Upsert(ctx, &models.Admin{
		UserID:   userID,
		Username: username,
		AddedBy:  grantedBy,
	})
}

func (s *adminService) Revoke(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}

func (s *adminService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.repo.Exists(ctx, userID)
}

func (s *adminService) List(ctx context.Context) ([]*models.Admin, error) {
	return s.repo.List(ctx)
}
