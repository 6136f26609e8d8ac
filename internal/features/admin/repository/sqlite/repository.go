package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"digital-store-bot/internal/features/admin/models"
	"digital-store-bot/internal/features/admin/repository"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) repository.AdminRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Upsert(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (user_id, username, added_by, added_date)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			username = excluded.username,
			added_by = excluded.added_by,
			added_date = excluded.added_date
	`

	_, err := r.db.ExecContext(ctx, query,
		admin.UserID, admin.Username, admin.AddedBy,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}

	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM admins WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}

	return nil
}

func (r *sqliteRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id FROM admins WHERE user_id = ?", userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	return true, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]*models.Admin, error) {
	query := "SELECT user_id, username, added_by, added_date FROM admins"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*models.Admin
	for rows.Next() {
		var (
			admin models.Admin
			added sql.NullString
		)
		if err := rows.Scan(&admin.UserID, &admin.Username, &admin.AddedBy, &added); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		if added.Valid {
			admin.AddedAt, _ = time.Parse(time.RFC3339, added.String)
		}
		admins = append(admins, &admin)
	}

	return admins, rows.Err()
}
