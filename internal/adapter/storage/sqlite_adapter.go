package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

// SQLite has no row locks. Every transaction begins IMMEDIATE and the pool
// holds a single connection, so writers are serialised database-wide.
var sqliteDialect = Dialect{
	Name:       "sqlite",
	lockSuffix: "",
	upsertLine: `
		INSERT INTO cart_lines (session_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + excluded.quantity, updated_at = excluded.updated_at`,
	upsertProduct: `
		INSERT INTO products (id, name, price, stock, category, badge, description, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name, price = excluded.price, stock = excluded.stock, category = excluded.category,
			badge = excluded.badge, description = excluded.description, image = excluded.image,
			updated_at = excluded.updated_at`,
	schema: sqliteSchema,
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	params := url.Values{}
	params.Set("_txlock", "immediate")
	params.Set("_busy_timeout", "5000")
	params.Set("_foreign_keys", "on")
	params.Set("_journal_mode", "WAL")

	db, err := sql.Open("sqlite3", "file:"+path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func NewSQLiteAdapter(db *sql.DB) *SQLStore {
	return NewSQLStore(db, sqliteDialect)
}
