package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int // units not reserved by any cart
	Category    string
	Badge       string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
