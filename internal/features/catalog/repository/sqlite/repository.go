package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"digital-store-bot/internal/features/catalog/models"
	"digital-store-bot/internal/features/catalog/repository"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) repository.ProductRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, product *models.Product) (int64, error) {
	query := `
		INSERT INTO products (category, name, features, price, description, created_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		product.Category, product.Name, product.Features, product.Price,
		product.Description, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get product id: %w", err)
	}

	return id, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, category, name, features, price, description, created_date
		FROM products
		WHERE id = ?
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *sqliteRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, category, name, features, price, description, created_date
		FROM products
	`

	return r.queryProducts(ctx, query)
}

func (r *sqliteRepository) GetByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	query := `
		SELECT id, category, name, features, price, description, created_date
		FROM products
		WHERE category = ?
	`

	return r.queryProducts(ctx, query, category)
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (r *sqliteRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		product models.Product
		created sql.NullString
	)
	if err := row.Scan(&product.ID, &product.Category, &product.Name,
		&product.Features, &product.Price, &product.Description, &created); err != nil {
		return nil, err
	}
	if created.Valid {
		product.CreatedAt, _ = time.Parse(time.RFC3339, created.String)
	}
	return &product, nil
}
