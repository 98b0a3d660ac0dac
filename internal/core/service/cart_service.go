package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/observability/logging"
	"github.com/rl1809/storefront/internal/observability/metrics"
	"github.com/rl1809/storefront/internal/port"
)

const (
	opAddToCart      = "add_to_cart"
	opUpdateQuantity = "update_quantity"
	opRemoveFromCart = "remove_from_cart"
	opListCart       = "list_cart"
	opCheckoutCart   = "checkout_cart"

	idempotencyKeyPrefix = "idempotency:cart:"
)

var tracer = otel.Tracer("github.com/rl1809/storefront/internal/core/service")

// errLineVanished aborts a transaction whose locked cart line was deleted by
// another one before this transaction could delete it.
var errLineVanished = errors.New("cart line vanished")

// CartService keeps product stock and the cart lines of every session
// consistent. Each mutation runs in one transaction that locks the product
// row before reading its stock.
type CartService struct {
	db            port.DatabaseRepository
	cache         port.CacheRepository
	confirmations *ConfirmationService
	metrics       *metrics.Metrics
	timeout       time.Duration
	now           func() time.Time
}

type Option func(*CartService)

// WithCache enables request deduplication for AddToCartOnce.
func WithCache(cache port.CacheRepository) Option {
	return func(s *CartService) { s.cache = cache }
}

// WithConfirmations hands checked-out orders to the confirmation dispatcher.
func WithConfirmations(c *ConfirmationService) Option {
	return func(s *CartService) { s.confirmations = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *CartService) { s.metrics = m }
}

// WithTimeout bounds every operation, lock wait included.
func WithTimeout(d time.Duration) Option {
	return func(s *CartService) { s.timeout = d }
}

func NewCartService(db port.DatabaseRepository, opts ...Option) *CartService {
	s := &CartService{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddToCart reserves quantity units of a product for the session.
func (s *CartService) AddToCart(ctx context.Context, sessionID string, productID int64, quantity int) (res domain.Reservation, err error) {
	ctx, done := s.begin(ctx, opAddToCart, attribute.Int64("product.id", productID), attribute.Int("quantity", quantity))
	defer func() { done(err) }()

	if sessionID == "" {
		return res, domain.ErrInvalidSession
	}
	if quantity < 1 {
		return res, domain.ErrInvalidQuantity
	}

	err = s.atomically(ctx, func(ctx context.Context, tx port.Tx) error {
		product, err := tx.GetProductForUpdate(ctx, productID)
		if err != nil {
			return fmt.Errorf("lock product: %w", err)
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// Stock already excludes what this session holds, so the existing
		// line quantity must not be counted against it a second time.
		if quantity > product.Stock {
			return domain.InsufficientStock(product.Stock)
		}

		line, err := tx.UpsertLine(ctx, sessionID, productID, quantity)
		if err != nil {
			return fmt.Errorf("upsert line: %w", err)
		}
		if err := tx.AdjustStock(ctx, productID, -quantity); err != nil {
			return fmt.Errorf("decrement stock: %w", err)
		}

		res = domain.Reservation{Line: line, Stock: product.Stock - quantity}
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// AddToCartOnce is AddToCart guarded by a caller-supplied request ID. A
// repeated ID for the same session fails with ErrDuplicateRequest. The ID is
// released again when the request is rejected without effect, so a corrected
// retry may reuse it; it stays taken after a transaction failure since the
// outcome is then unknown to the caller.
func (s *CartService) AddToCartOnce(ctx context.Context, requestID, sessionID string, productID int64, quantity int) (domain.Reservation, error) {
	if s.cache == nil || requestID == "" {
		return s.AddToCart(ctx, sessionID, productID, quantity)
	}
	if sessionID == "" {
		return domain.Reservation{}, domain.ErrInvalidSession
	}

	key := idempotencyKeyPrefix + sessionID + ":" + requestID
	ok, err := s.cache.SetIdempotency(ctx, key)
	if err != nil {
		return domain.Reservation{}, domain.TransactionFailure(fmt.Errorf("idempotency check failed: %w", err))
	}
	if !ok {
		s.metrics.ObserveCartOp(opAddToCart, string(domain.KindDuplicateRequest), 0)
		return domain.Reservation{}, domain.ErrDuplicateRequest
	}

	res, err := s.AddToCart(ctx, sessionID, productID, quantity)
	if err != nil && domain.KindOf(err) != domain.KindTransactionFailure {
		if relErr := s.cache.ReleaseIdempotency(context.WithoutCancel(ctx), key); relErr != nil {
			logging.FromContext(ctx).Warn("release idempotency key", zap.String("key", key), zap.Error(relErr))
		}
	}
	return res, err
}

// UpdateQuantity sets the session's line for a product to newQuantity,
// returning the difference to stock or taking it from stock. Zero removes
// the line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, newQuantity int) (res domain.Reservation, err error) {
	if newQuantity == 0 {
		return s.RemoveFromCart(ctx, sessionID, productID)
	}

	ctx, done := s.begin(ctx, opUpdateQuantity, attribute.Int64("product.id", productID), attribute.Int("quantity", newQuantity))
	defer func() { done(err) }()

	if sessionID == "" {
		return res, domain.ErrInvalidSession
	}
	if newQuantity < 0 {
		return res, domain.ErrInvalidQuantity
	}

	err = s.atomically(ctx, func(ctx context.Context, tx port.Tx) error {
		product, line, err := lockLine(ctx, tx, sessionID, productID)
		if err != nil {
			return err
		}

		if available := product.Stock + line.Quantity; available < newQuantity {
			return domain.InsufficientStock(available)
		}

		updated, err := tx.SetLineQuantity(ctx, sessionID, productID, newQuantity)
		if err != nil {
			return fmt.Errorf("set line quantity: %w", err)
		}
		delta := line.Quantity - newQuantity
		if delta != 0 {
			if err := tx.AdjustStock(ctx, productID, delta); err != nil {
				return fmt.Errorf("adjust stock: %w", err)
			}
		}

		res = domain.Reservation{Line: updated, Stock: product.Stock + delta}
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// RemoveFromCart deletes the session's line for a product and restores its
// quantity to stock.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (res domain.Reservation, err error) {
	ctx, done := s.begin(ctx, opRemoveFromCart, attribute.Int64("product.id", productID))
	defer func() { done(err) }()

	if sessionID == "" {
		return res, domain.ErrInvalidSession
	}

	err = s.atomically(ctx, func(ctx context.Context, tx port.Tx) error {
		product, line, err := lockLine(ctx, tx, sessionID, productID)
		if err != nil {
			return err
		}

		deleted, err := tx.DeleteLine(ctx, sessionID, productID)
		if err != nil {
			return fmt.Errorf("delete line: %w", err)
		}
		if !deleted {
			return fmt.Errorf("delete line %d: %w", productID, errLineVanished)
		}
		if err := tx.AdjustStock(ctx, productID, line.Quantity); err != nil {
			return fmt.Errorf("restore stock: %w", err)
		}

		res = domain.Reservation{Line: *line, Stock: product.Stock + line.Quantity, Removed: true}
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return res, nil
}

// ListCart returns the session's lines with current product data and totals.
// A session without lines gets an empty cart.
func (s *CartService) ListCart(ctx context.Context, sessionID string) (cart domain.Cart, err error) {
	ctx, done := s.begin(ctx, opListCart)
	defer func() { done(err) }()

	if sessionID == "" {
		return cart, domain.ErrInvalidSession
	}

	items, err := s.db.ListCart(ctx, sessionID)
	if err != nil {
		return cart, domain.TransactionFailure(fmt.Errorf("list cart: %w", err))
	}
	return newCart(sessionID, items), nil
}

// CheckoutCart turns the session's reservations into an order. The reserved
// stock stays consumed and the ordered lines are removed from the cart, all
// in one transaction.
func (s *CartService) CheckoutCart(ctx context.Context, sessionID string, buyer domain.Buyer) (order domain.Order, err error) {
	ctx, done := s.begin(ctx, opCheckoutCart)
	defer func() { done(err) }()

	if sessionID == "" {
		return order, domain.ErrInvalidSession
	}
	if buyer.Email != "" && !validEmail(buyer.Email) {
		return order, domain.ErrInvalidEmail
	}

	err = s.atomically(ctx, func(ctx context.Context, tx port.Tx) error {
		lines, err := tx.ListLines(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("list lines: %w", err)
		}
		if len(lines) == 0 {
			return domain.ErrCartEmpty
		}

		// Ascending id order keeps concurrent checkouts from deadlocking.
		ids := make([]int64, 0, len(lines))
		for _, l := range lines {
			ids = append(ids, l.ProductID)
		}
		slices.Sort(ids)

		locked := make(map[int64]*domain.Product, len(ids))
		for _, id := range slices.Compact(ids) {
			product, err := tx.GetProductForUpdate(ctx, id)
			if err != nil {
				return fmt.Errorf("lock product %d: %w", id, err)
			}
			if product == nil {
				return domain.ErrProductNotFound
			}
			locked[id] = product
		}

		// The first read may be a stale snapshot. Re-read under lock so the
		// order only holds quantities whose stock is still reserved.
		lines, err = tx.ListLinesForUpdate(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("list lines: %w", err)
		}

		order = domain.Order{
			ID:            uuid.NewString(),
			SessionID:     sessionID,
			CustomerName:  buyer.Name,
			CustomerEmail: buyer.Email,
			Total:         decimal.Zero,
			Status:        domain.OrderStatusConfirmed,
			CreatedAt:     s.now(),
		}
		for _, l := range lines {
			product, ok := locked[l.ProductID]
			if !ok {
				continue
			}
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
			order.Items = append(order.Items, domain.OrderItem{
				ProductID: l.ProductID,
				Name:      product.Name,
				UnitPrice: product.Price,
				Quantity:  l.Quantity,
				Subtotal:  subtotal,
			})
			order.Total = order.Total.Add(subtotal)
		}
		if len(order.Items) == 0 {
			return domain.ErrCartEmpty
		}

		if err := tx.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for _, item := range order.Items {
			deleted, err := tx.DeleteLine(ctx, sessionID, item.ProductID)
			if err != nil {
				return fmt.Errorf("clear line %d: %w", item.ProductID, err)
			}
			if !deleted {
				return fmt.Errorf("clear line %d: %w", item.ProductID, errLineVanished)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	if s.confirmations != nil && order.CustomerEmail != "" {
		if qErr := s.confirmations.Enqueue(order); qErr != nil {
			logging.FromContext(ctx).Warn("order confirmation not queued",
				zap.String("order_id", order.ID), zap.Error(qErr))
		}
	}
	return order, nil
}

func (s *CartService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.db.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// lockLine locks the product row and reads the session's line for it. A
// missing product means no line can reference it either.
func lockLine(ctx context.Context, tx port.Tx, sessionID string, productID int64) (*domain.Product, *domain.CartLine, error) {
	product, err := tx.GetProductForUpdate(ctx, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock product: %w", err)
	}
	if product == nil {
		return nil, nil, domain.ErrCartLineNotFound
	}

	line, err := tx.GetLine(ctx, sessionID, productID)
	if err != nil {
		return nil, nil, fmt.Errorf("get line: %w", err)
	}
	if line == nil {
		return nil, nil, domain.ErrCartLineNotFound
	}
	return product, line, nil
}

// atomically runs fn in a transaction. Domain rejections pass through
// unchanged; anything else is reported as a transaction failure.
func (s *CartService) atomically(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	err := s.db.InTx(ctx, fn)
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.TransactionFailure(err)
}

func (s *CartService) begin(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "CartService."+op, trace.WithAttributes(attrs...))

	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}

	return ctx, func(err error) {
		cancel()

		result := "ok"
		if err != nil {
			result = string(domain.KindOf(err))
			if result == "" {
				result = "error"
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, result)
			if domain.KindOf(err) == domain.KindTransactionFailure {
				logging.FromContext(ctx).Error("cart operation failed", zap.String("op", op), zap.Error(err))
			}
		}
		span.End()
		s.metrics.ObserveCartOp(op, result, time.Since(start))
	}
}

func newCart(sessionID string, items []domain.CartItem) domain.Cart {
	cart := domain.Cart{
		SessionID: sessionID,
		Items:     make([]domain.CartItem, 0, len(items)),
		Total:     decimal.Zero,
	}
	for _, item := range items {
		item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		cart.Items = append(cart.Items, item)
		cart.ItemCount += item.Quantity
		cart.Total = cart.Total.Add(item.Subtotal)
	}
	return cart
}
