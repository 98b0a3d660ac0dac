package handler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/rl1809/storefront/internal/adapter/handler/pb"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/observability/logging"
)

// sessionMetadataKey carries the caller's session ID in request metadata.
const sessionMetadataKey = "x-session-id"

type GRPCHandler struct {
	pb.UnimplementedCartServiceServer
	cartService *service.CartService
}

var _ pb.CartServiceServer = (*GRPCHandler)(nil)

func NewGRPCHandler(cartService *service.CartService) *GRPCHandler {
	return &GRPCHandler{cartService: cartService}
}

func (h *GRPCHandler) AddToCart(ctx context.Context, req *pb.AddToCartRequest) (*pb.ReservationResponse, error) {
	res, err := h.cartService.AddToCartOnce(ctx, req.GetRequestId(), sessionFromMetadata(ctx), req.GetProductId(), int(req.GetQuantity()))
	return reservationReply(res, err, "added to cart"), nil
}

func (h *GRPCHandler) UpdateQuantity(ctx context.Context, req *pb.UpdateQuantityRequest) (*pb.ReservationResponse, error) {
	res, err := h.cartService.UpdateQuantity(ctx, sessionFromMetadata(ctx), req.GetProductId(), int(req.GetQuantity()))
	return reservationReply(res, err, "cart updated"), nil
}

func (h *GRPCHandler) RemoveFromCart(ctx context.Context, req *pb.RemoveFromCartRequest) (*pb.ReservationResponse, error) {
	res, err := h.cartService.RemoveFromCart(ctx, sessionFromMetadata(ctx), req.GetProductId())
	return reservationReply(res, err, "removed from cart"), nil
}

func (h *GRPCHandler) ListCart(ctx context.Context, _ *pb.ListCartRequest) (*pb.ListCartResponse, error) {
	cart, err := h.cartService.ListCart(ctx, sessionFromMetadata(ctx))
	if err != nil {
		kind, message, _ := grpcFailure(err)
		return &pb.ListCartResponse{Success: false, Message: message, Kind: kind}, nil
	}

	resp := &pb.ListCartResponse{
		Success:   true,
		Message:   "ok",
		Items:     make([]*pb.CartItem, 0, len(cart.Items)),
		ItemCount: int64(cart.ItemCount),
		Total:     cart.Total.StringFixed(2),
	}
	for _, it := range cart.Items {
		resp.Items = append(resp.Items, &pb.CartItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			Price:     it.Price.StringFixed(2),
			Image:     it.Image,
			Stock:     int64(it.Stock),
			Quantity:  int64(it.Quantity),
			Subtotal:  it.Subtotal.StringFixed(2),
		})
	}
	return resp, nil
}

func (h *GRPCHandler) CheckoutCart(ctx context.Context, req *pb.CheckoutCartRequest) (*pb.CheckoutCartResponse, error) {
	order, err := h.cartService.CheckoutCart(ctx, sessionFromMetadata(ctx), domain.Buyer{Name: req.GetName(), Email: req.GetEmail()})
	if err != nil {
		kind, message, _ := grpcFailure(err)
		return &pb.CheckoutCartResponse{Success: false, Message: message, Kind: kind}, nil
	}

	resp := &pb.CheckoutCartResponse{
		Success: true,
		Message: "order placed successfully",
		OrderId: order.ID,
		Total:   order.Total.StringFixed(2),
	}
	for _, it := range order.Items {
		resp.Items = append(resp.Items, &pb.OrderItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Quantity:  int64(it.Quantity),
			Subtotal:  it.Subtotal.StringFixed(2),
		})
	}
	return resp, nil
}

// UnaryLoggingInterceptor attaches a per-call logger and logs each call.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		callLogger := logger.With(zap.String("method", info.FullMethod))
		resp, err := handler(logging.ContextWithLogger(ctx, callLogger), req)

		fields := []zap.Field{zap.Duration("latency", time.Since(start))}
		if err != nil {
			callLogger.Warn("grpc_request", append(fields, zap.Error(err))...)
		} else {
			callLogger.Info("grpc_request", fields...)
		}
		return resp, err
	}
}

func sessionFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(sessionMetadataKey)
	if len(values) == 0 || len(values[0]) > maxSessionIDLength {
		return ""
	}
	return values[0]
}

func reservationReply(res domain.Reservation, err error, okMessage string) *pb.ReservationResponse {
	if err != nil {
		kind, message, available := grpcFailure(err)
		return &pb.ReservationResponse{
			Success:   false,
			Message:   message,
			Kind:      kind,
			Available: int64(available),
		}
	}
	return &pb.ReservationResponse{
		Success: true,
		Message: okMessage,
		Line:    &pb.CartLine{ProductId: res.Line.ProductID, Quantity: int64(res.Line.Quantity)},
		Stock:   int64(res.Stock),
		Removed: res.Removed,
	}
}

func grpcFailure(err error) (kind, message string, available int) {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindTransactionFailure {
		return string(domain.KindTransactionFailure), "internal error", 0
	}
	return string(de.Kind), de.Message, de.Available
}
