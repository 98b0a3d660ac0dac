package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/observability/metrics"
	"github.com/rl1809/storefront/internal/port"
)

const notifyTimeout = 5 * time.Second

var (
	ErrQueueFull   = errors.New("confirmation queue full")
	ErrQueueClosed = errors.New("confirmation queue closed")
)

// ConfirmationService delivers order confirmations from a bounded queue on a
// pool of workers. Delivery never affects the committed order.
type ConfirmationService struct {
	notifier port.OrderNotifier
	logger   *zap.Logger
	metrics  *metrics.Metrics

	mu         sync.RWMutex
	closed     bool
	orderQueue chan domain.Order
	wg         sync.WaitGroup
}

func NewConfirmationService(notifier port.OrderNotifier, queueSize int, logger *zap.Logger, m *metrics.Metrics) *ConfirmationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationService{
		notifier:   notifier,
		logger:     logger,
		metrics:    m,
		orderQueue: make(chan domain.Order, queueSize),
	}
}

// Enqueue hands the order to the workers without blocking the caller.
func (s *ConfirmationService) Enqueue(order domain.Order) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrQueueClosed
	}
	select {
	case s.orderQueue <- order:
		return nil
	default:
		s.metrics.ObserveNotification("dropped")
		return ErrQueueFull
	}
}

func (s *ConfirmationService) Start(workers int) {
	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go func(id int) {
			defer s.wg.Done()
			s.workerLoop(id)
		}(i)
	}
	s.logger.Info("started confirmation workers", zap.Int("workers", workers))
}

// Close stops accepting orders and waits for the queued ones to be delivered.
func (s *ConfirmationService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.orderQueue)
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ConfirmationService) workerLoop(id int) {
	for order := range s.orderQueue {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)

		if err := s.notifier.NotifyOrderPlaced(ctx, order); err != nil {
			s.metrics.ObserveNotification("failed")
			s.logger.Error("order confirmation failed",
				zap.Int("worker", id), zap.String("order_id", order.ID), zap.Error(err))
		} else {
			s.metrics.ObserveNotification("sent")
			s.logger.Info("order confirmation sent",
				zap.Int("worker", id), zap.String("order_id", order.ID))
		}

		cancel()
	}
}
