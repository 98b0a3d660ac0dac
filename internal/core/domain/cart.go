package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a tentative reservation of Quantity units of a product by one session.
type CartLine struct {
	SessionID string
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a cart line joined with the product's current display data.
type CartItem struct {
	CartLine
	Name     string
	Price    decimal.Decimal
	Image    string
	Stock    int
	Subtotal decimal.Decimal
}

type Cart struct {
	SessionID string
	Items     []CartItem
	ItemCount int
	Total     decimal.Decimal
}

// Reservation is the outcome of a mutating cart operation: the resulting line
// and the product's stock right after commit. Removed is set when the line no
// longer exists.
type Reservation struct {
	Line    CartLine
	Stock   int
	Removed bool
}
