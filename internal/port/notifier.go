package port

import (
	"context"

	"github.com/rl1809/storefront/internal/core/domain"
)

type OrderNotifier interface {
	NotifyOrderPlaced(ctx context.Context, order domain.Order) error
}
