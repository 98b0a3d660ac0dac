package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

//go:embed schema/mysql.sql
var mysqlSchema string

var mysqlDialect = Dialect{
	Name:       "mysql",
	lockSuffix: " FOR UPDATE",
	upsertLine: `
		INSERT INTO cart_lines (session_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity), updated_at = VALUES(updated_at)`,
	upsertProduct: `
		INSERT INTO products (id, name, price, stock, category, badge, description, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), price = VALUES(price), stock = VALUES(stock), category = VALUES(category),
			badge = VALUES(badge), description = VALUES(description), image = VALUES(image),
			updated_at = VALUES(updated_at)`,
	schema: mysqlSchema,
}

// OpenMySQL connects with parseTime forced on and applies the pool bounds.
func OpenMySQL(ctx context.Context, dsn string, pool PoolConfig) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// NewMySQLAdapter returns a store that serialises reservations of a product
// with SELECT ... FOR UPDATE on its row.
func NewMySQLAdapter(db *sql.DB) *SQLStore {
	return NewSQLStore(db, mysqlDialect)
}
