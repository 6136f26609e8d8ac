package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"digital-store-bot/internal/features/user/models"
	"digital-store-bot/internal/features/user/repository"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) repository.UserRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO users (user_id, username, first_name, last_name, joined_date, last_activity)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			username = excluded.username,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			last_activity = excluded.last_activity
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.FirstName, user.LastName, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *sqliteRepository) TouchActivity(ctx context.Context, id int64) error {
	query := "UPDATE users SET last_activity = ? WHERE user_id = ?"

	_, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update user activity: %w", err)
	}

	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, joined_date, is_blocked, last_activity
		FROM users
		WHERE user_id = ?
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *sqliteRepository) ListActive(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT user_id, username, first_name, last_name, joined_date, is_blocked, last_activity
		FROM users
		WHERE is_blocked = 0
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *sqliteRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE is_blocked = 0").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user             models.User
		joined, activity sql.NullString
		blocked          int
	)
	if err := row.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&joined, &blocked, &activity); err != nil {
		return nil, err
	}
	user.IsBlocked = blocked != 0
	if joined.Valid {
		user.JoinedAt, _ = time.Parse(time.RFC3339, joined.String)
	}
	if activity.Valid {
		user.LastActivity, _ = time.Parse(time.RFC3339, activity.String)
	}
	return &user, nil
}
