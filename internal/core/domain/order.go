package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type Order struct {
	ID            string
	SessionID     string
	CustomerName  string
	CustomerEmail string
	Items         []OrderItem
	Total         decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
}

type OrderItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
}

// Buyer holds the optional contact details given at checkout.
type Buyer struct {
	Name  string
	Email string
}

type Contact struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
