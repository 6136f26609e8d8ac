package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"digital-store-bot/internal/features/order/models"
	"digital-store-bot/internal/features/order/repository"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) repository.OrderRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, order *models.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, product_name, amount, status, order_date, screenshot_file_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var fileID interface{}
	if order.ScreenshotFileID != "" {
		fileID = order.ScreenshotFileID
	}

	res, err := r.db.ExecContext(ctx, query,
		order.UserID, order.ProductName, order.Amount, models.StatusPending,
		time.Now().UTC().Format(time.RFC3339), fileID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get order id: %w", err)
	}

	return id, nil
}

func (r *sqliteRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, product_name, amount, status, order_date, screenshot_file_id
		FROM orders
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var (
			order   models.Order
			ordered sql.NullString
			fileID  sql.NullString
		)
		if err := rows.Scan(&order.ID, &order.UserID, &order.ProductName,
			&order.Amount, &order.Status, &ordered, &fileID); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if ordered.Valid {
			order.OrderedAt, _ = time.Parse(time.RFC3339, ordered.String)
		}
		order.ScreenshotFileID = fileID.String
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (r *sqliteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}

	return count, nil
}
