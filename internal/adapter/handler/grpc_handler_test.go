package handler

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/rl1809/storefront/internal/adapter/handler/pb"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
)

func newGRPCClient(t *testing.T) pb.CartServiceClient {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "grpc.db"))
	require.NoError(t, err)
	store := storage.NewSQLiteAdapter(db)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, service.NewCatalogService(store).SeedCatalog(ctx, []domain.Product{
		{ID: 7, Name: "Colar", Price: decimal.RequireFromString("39.90"), Stock: 5},
	}))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryLoggingInterceptor(zap.NewNop())))
	pb.RegisterCartServiceServer(srv, NewGRPCHandler(service.NewCartService(store)))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewCartServiceClient(conn)
}

func withSession(session string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), sessionMetadataKey, session)
}

func TestGRPC_CartFlow(t *testing.T) {
	client := newGRPCClient(t)
	ctx := withSession("grpc-session")

	resp, err := client.AddToCart(ctx, &pb.AddToCartRequest{ProductId: 7, Quantity: 3})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess(), resp.GetMessage())
	assert.Equal(t, int64(2), resp.GetStock())
	assert.Equal(t, int64(3), resp.GetLine().GetQuantity())

	resp, err = client.AddToCart(withSession("other"), &pb.AddToCartRequest{ProductId: 7, Quantity: 3})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "insufficient_stock", resp.GetKind())
	assert.Equal(t, int64(2), resp.GetAvailable())

	resp, err = client.UpdateQuantity(ctx, &pb.UpdateQuantityRequest{ProductId: 7, Quantity: 1})
	require.NoError(t, err)
	require.True(t, resp.GetSuccess(), resp.GetMessage())
	assert.Equal(t, int64(4), resp.GetStock())

	list, err := client.ListCart(ctx, &pb.ListCartRequest{})
	require.NoError(t, err)
	require.True(t, list.GetSuccess())
	require.Len(t, list.GetItems(), 1)
	assert.Equal(t, int64(1), list.GetItemCount())
	assert.Equal(t, "39.90", list.GetTotal())

	order, err := client.CheckoutCart(ctx, &pb.CheckoutCartRequest{Name: "Ana"})
	require.NoError(t, err)
	require.True(t, order.GetSuccess(), order.GetMessage())
	assert.NotEmpty(t, order.GetOrderId())
	assert.Equal(t, "39.90", order.GetTotal())

	resp, err = client.RemoveFromCart(ctx, &pb.RemoveFromCartRequest{ProductId: 7})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "cart_line_not_found", resp.GetKind())
}

func TestGRPC_MissingSession(t *testing.T) {
	client := newGRPCClient(t)

	resp, err := client.AddToCart(context.Background(), &pb.AddToCartRequest{ProductId: 7, Quantity: 1})
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.Equal(t, "invalid_session", resp.GetKind())
}

func TestGRPCFailure_HidesStorageErrors(t *testing.T) {
	kind, message, _ := grpcFailure(domain.TransactionFailure(assert.AnError))
	assert.Equal(t, "transaction_failure", kind)
	assert.Equal(t, "internal error", message)

	kind, _, available := grpcFailure(domain.InsufficientStock(4))
	assert.Equal(t, "insufficient_stock", kind)
	assert.Equal(t, 4, available)
}

func TestGRPC_LargeQuantityKeepsWidth(t *testing.T) {
	res := domain.Reservation{Line: domain.CartLine{ProductID: 7, Quantity: 1 << 40}, Stock: 1 << 33}
	reply := reservationReply(res, nil, "ok")
	assert.Equal(t, int64(1<<40), reply.GetLine().GetQuantity())
	assert.Equal(t, int64(1<<33), reply.GetStock())

	reply = reservationReply(domain.Reservation{}, domain.InsufficientStock(1<<35), "ok")
	assert.Equal(t, int64(1<<35), reply.GetAvailable())
}
