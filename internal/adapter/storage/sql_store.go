package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

// ErrStockConflict is returned when a stock adjustment would drive a product
// below zero or the product row vanished.
var ErrStockConflict = errors.New("stock conflict")

// Dialect carries the statements that differ between database engines.
type Dialect struct {
	Name string

	// lockSuffix is appended to SELECTs that must lock the rows they read.
	lockSuffix    string
	upsertLine    string
	upsertProduct string
	schema        string
}

// PoolConfig bounds the connection pool shared by all requests.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore implements port.DatabaseRepository on database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

var _ port.DatabaseRepository = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *SQLStore) Dialect() string { return s.dialect.Name }

func (s *SQLStore) Close() error { return s.db.Close() }

// Migrate creates the tables when they do not exist yet.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(s.dialect.schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s: %w", s.dialect.Name, err)
		}
	}
	return nil
}

func (s *SQLStore) InTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &txStore{q: tx, dialect: s.dialect, now: s.now}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLStore) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return getProduct(ctx, s.db, productID, "")
}

func (s *SQLStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *SQLStore) UpsertProduct(ctx context.Context, p domain.Product) error {
	now := s.now()
	_, err := s.db.ExecContext(ctx, s.dialect.upsertProduct,
		p.ID, p.Name, p.Price, p.Stock, p.Category, p.Badge, p.Description, p.Image, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (s *SQLStore) ListCart(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return listLines(ctx, s.db, sessionID, "")
}

func (s *SQLStore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	err := s.db.QueryRowContext(ctx, `
		SELECT id, session_id, customer_name, customer_email, total, status, created_at
		FROM orders WHERE id = ?`, orderID,
	).Scan(&o.ID, &o.SessionID, &o.CustomerName, &o.CustomerEmail, &o.Total, &o.Status, &o.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, name, unit_price, quantity, subtotal
		FROM order_items WHERE order_id = ? ORDER BY product_id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.UnitPrice, &item.Quantity, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *SQLStore) SaveContact(ctx context.Context, email string) (domain.Contact, error) {
	c := domain.Contact{Email: email, CreatedAt: s.now()}
	result, err := s.db.ExecContext(ctx, `INSERT INTO contacts (email, created_at) VALUES (?, ?)`, c.Email, c.CreatedAt)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	c.ID, err = result.LastInsertId()
	if err != nil {
		return domain.Contact{}, fmt.Errorf("contact id: %w", err)
	}
	return c, nil
}

// txStore is the port.Tx view of one open transaction.
type txStore struct {
	q       querier
	dialect Dialect
	now     func() time.Time
}

func (t *txStore) GetProductForUpdate(ctx context.Context, productID int64) (*domain.Product, error) {
	return getProduct(ctx, t.q, productID, t.dialect.lockSuffix)
}

func (t *txStore) AdjustStock(ctx context.Context, productID int64, delta int) error {
	result, err := t.q.ExecContext(ctx, `
		UPDATE products
		SET stock = stock + ?, updated_at = ?
		WHERE id = ? AND stock + ? >= 0`,
		delta, t.now(), productID, delta,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if rows == 0 {
		return ErrStockConflict
	}
	return nil
}

func (t *txStore) GetLine(ctx context.Context, sessionID string, productID int64) (*domain.CartLine, error) {
	var l domain.CartLine
	err := t.q.QueryRowContext(ctx, `
		SELECT session_id, product_id, quantity, created_at, updated_at
		FROM cart_lines WHERE session_id = ? AND product_id = ?`+t.dialect.lockSuffix,
		sessionID, productID,
	).Scan(&l.SessionID, &l.ProductID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query cart line: %w", err)
	}
	return &l, nil
}

func (t *txStore) UpsertLine(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error) {
	now := t.now()
	if _, err := t.q.ExecContext(ctx, t.dialect.upsertLine, sessionID, productID, quantity, now, now); err != nil {
		return domain.CartLine{}, fmt.Errorf("upsert cart line: %w", err)
	}
	return t.mustGetLine(ctx, sessionID, productID)
}

func (t *txStore) SetLineQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error) {
	_, err := t.q.ExecContext(ctx, `
		UPDATE cart_lines SET quantity = ?, updated_at = ?
		WHERE session_id = ? AND product_id = ?`,
		quantity, t.now(), sessionID, productID,
	)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("update cart line: %w", err)
	}
	return t.mustGetLine(ctx, sessionID, productID)
}

func (t *txStore) DeleteLine(ctx context.Context, sessionID string, productID int64) (bool, error) {
	result, err := t.q.ExecContext(ctx, `DELETE FROM cart_lines WHERE session_id = ? AND product_id = ?`, sessionID, productID)
	if err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}
	return rows > 0, nil
}

func (t *txStore) ListLines(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return listLines(ctx, t.q, sessionID, "")
}

func (t *txStore) ListLinesForUpdate(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return listLines(ctx, t.q, sessionID, t.dialect.lockSuffix)
}

func (t *txStore) CreateOrder(ctx context.Context, order domain.Order) error {
	_, err := t.q.ExecContext(ctx, `
		INSERT INTO orders (id, session_id, customer_name, customer_email, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.SessionID, order.CustomerName, order.CustomerEmail,
		order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := t.q.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, subtotal)
			VALUES (?, ?, ?, ?, ?, ?)`,
			order.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert order item %d: %w", item.ProductID, err)
		}
	}
	return nil
}

func (t *txStore) mustGetLine(ctx context.Context, sessionID string, productID int64) (domain.CartLine, error) {
	line, err := t.GetLine(ctx, sessionID, productID)
	if err != nil {
		return domain.CartLine{}, err
	}
	if line == nil {
		return domain.CartLine{}, fmt.Errorf("cart line %s/%d: %w", sessionID, productID, sql.ErrNoRows)
	}
	return *line, nil
}

const productColumns = `id, name, price, stock, category, badge, description, image, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Badge,
		&p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func getProduct(ctx context.Context, q querier, productID int64, lockSuffix string) (*domain.Product, error) {
	p, err := scanProduct(q.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`+lockSuffix, productID))

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func listLines(ctx context.Context, q querier, sessionID string, lockSuffix string) ([]domain.CartItem, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT c.session_id, c.product_id, c.quantity, c.created_at, c.updated_at,
		       p.name, p.price, p.image, p.stock
		FROM cart_lines c
		JOIN products p ON p.id = c.product_id
		WHERE c.session_id = ?
		ORDER BY c.product_id`+lockSuffix, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		if err := rows.Scan(&it.SessionID, &it.ProductID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt,
			&it.Name, &it.Price, &it.Image, &it.Stock); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
