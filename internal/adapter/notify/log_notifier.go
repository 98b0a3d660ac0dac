package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
)

// LogNotifier records confirmations in the log when no mail provider is set.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyOrderPlaced(_ context.Context, order domain.Order) error {
	n.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("email", order.CustomerEmail),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return nil
}
