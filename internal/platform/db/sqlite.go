package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id INTEGER PRIMARY KEY,
	username TEXT,
	first_name TEXT,
	last_name TEXT,
	joined_date TEXT,
	is_blocked INTEGER DEFAULT 0,
	last_activity TEXT
);

CREATE TABLE IF NOT EXISTS admins (
	user_id INTEGER PRIMARY KEY,
	username TEXT,
	added_by INTEGER,
	added_date TEXT
);

CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT,
	name TEXT,
	features TEXT,
	price TEXT,
	description TEXT,
	created_date TEXT
);

CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	product_name TEXT,
	amount TEXT,
	status TEXT DEFAULT 'pending',
	order_date TEXT,
	screenshot_file_id TEXT
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT
);
`

// Open initializes the SQLite database at path and creates the schema
// on first run. Schema evolution is not handled here; adding a column
// requires a manual migration.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return conn, nil
}
