package port

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

type ProductStore interface {
	// GetProductForUpdate reads a product and holds an exclusive lock on its
	// row until the transaction ends. Returns nil, nil when the product is absent.
	GetProductForUpdate(ctx context.Context, productID int64) (*domain.Product, error)

	// AdjustStock adds delta to the product's stock, refusing to go below zero
	AdjustStock(ctx context.Context, productID int64, delta int) error
}

type CartStore interface {
	// GetLine returns nil, nil when the session holds no line for the product
	GetLine(ctx context.Context, sessionID string, productID int64) (*domain.CartLine, error)

	// UpsertLine inserts the line or adds quantity to the existing one
	UpsertLine(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error)

	SetLineQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error)

	// DeleteLine reports whether a line was actually removed
	DeleteLine(ctx context.Context, sessionID string, productID int64) (bool, error)

	// ListLines returns the session's lines joined with product display fields, ordered by product ID
	ListLines(ctx context.Context, sessionID string) ([]domain.CartItem, error)

	// ListLinesForUpdate is ListLines as a locking read: it sees the latest
	// committed lines and holds their locks until the transaction ends.
	ListLinesForUpdate(ctx context.Context, sessionID string) ([]domain.CartItem, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order domain.Order) error
}

// Tx is the set of stores bound to one database transaction.
type Tx interface {
	ProductStore
	CartStore
	OrderStore
}

type DatabaseRepository interface {
	// InTx runs fn inside a transaction. It commits when fn returns nil and
	// rolls back on any error, panic or context cancellation.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// UpsertProduct sets a product's catalog data and stock authoritatively
	UpsertProduct(ctx context.Context, product domain.Product) error

	ListCart(ctx context.Context, sessionID string) ([]domain.CartItem, error)

	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	SaveContact(ctx context.Context, email string) (domain.Contact, error)
}
