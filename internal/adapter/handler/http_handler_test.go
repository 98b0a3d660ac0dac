package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/observability/metrics"
)

type memCache struct {
	mu   sync.Mutex
	keys map[string]bool
}

func (c *memCache) SetIdempotency(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys[key] {
		return false, nil
	}
	c.keys[key] = true
	return true, nil
}

func (c *memCache) ReleaseIdempotency(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.keys, key)
	return nil
}

type testServer struct {
	handler http.Handler
	store   *storage.SQLStore
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, filepath.Join(t.TempDir(), "http.db"))
	require.NoError(t, err)
	store := storage.NewSQLiteAdapter(db)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	catalog := service.NewCatalogService(store)
	require.NoError(t, catalog.SeedCatalog(ctx, []domain.Product{
		{ID: 1, Name: "Vestido Floral", Price: decimal.RequireFromString("129.90"), Stock: 5, Category: "vestidos"},
		{ID: 2, Name: "Bolsa Couro", Price: decimal.RequireFromString("89.50"), Stock: 1, Category: "acessorios"},
	}))

	m := metrics.New("storefront")
	cart := service.NewCartService(store,
		service.WithCache(&memCache{keys: make(map[string]bool)}),
		service.WithMetrics(m),
	)

	h := NewHTTPHandler(cart, catalog, HeaderSession("X-Session-ID"))
	router := NewRouter(h, RouterConfig{
		Logger:        zap.NewNop(),
		Metrics:       m,
		CORSOrigins:   []string{"http://localhost:3000"},
		SessionHeader: "X-Session-ID",
	})
	return &testServer{handler: router, store: store, metrics: m}
}

func (s *testServer) do(t *testing.T, method, path, session string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) stock(t *testing.T, id int64) int {
	t.Helper()
	p, err := s.store.GetProduct(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHTTP_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTP_RequestIDEchoed(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil, "X-Request-ID", "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestHTTP_Products(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]productResponse](t, rec)
	require.Len(t, products, 2)
	assert.Equal(t, "Vestido Floral", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("129.90")))

	rec = s.do(t, http.MethodGet, "/api/products/2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[productResponse](t, rec).Stock)

	rec = s.do(t, http.MethodGet, "/api/products/99", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product_not_found", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/products/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_SessionRequired(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		session string
	}{
		{"missing", ""},
		{"too long", strings.Repeat("x", maxSessionIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/cart", tt.session, map[string]any{"product_id": 1, "quantity": 1})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "invalid_session", decode[errorResponse](t, rec).Error)
		})
	}

	assert.Equal(t, 5, s.stock(t, 1), "no stock may move for a rejected session")
}

func TestHTTP_CartScenario(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 1, "quantity": 3})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	res := decode[reservationResponse](t, rec)
	assert.Equal(t, 3, res.Line.Quantity)
	assert.Equal(t, 2, res.Stock)

	rec = s.do(t, http.MethodPost, "/api/cart", "b", map[string]any{"product_id": 1, "quantity": 3})
	require.Equal(t, http.StatusConflict, rec.Code)
	e := decode[errorResponse](t, rec)
	assert.Equal(t, "insufficient_stock", e.Error)
	require.NotNil(t, e.Available)
	assert.Equal(t, 2, *e.Available)

	rec = s.do(t, http.MethodPut, "/api/cart/1", "a", map[string]any{"quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 4, decode[reservationResponse](t, rec).Stock)

	rec = s.do(t, http.MethodDelete, "/api/cart/1", "a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[reservationResponse](t, rec)
	assert.True(t, res.Removed)
	assert.Equal(t, 5, res.Stock)

	rec = s.do(t, http.MethodDelete, "/api/cart/1", "a", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "cart_line_not_found", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 42})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, 5, s.stock(t, 1))
}

func TestHTTP_AddToCartValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 1, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_quantity", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodPut, "/api/cart/1", "a", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// quantity defaults to one
	rec = s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[reservationResponse](t, rec).Line.Quantity)
}

func TestHTTP_IdempotencyKey(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"product_id": 1, "quantity": 2}

	rec := s.do(t, http.MethodPost, "/api/cart", "a", body, "Idempotency-Key", "req-1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/cart", "a", body, "Idempotency-Key", "req-1")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_request", decode[errorResponse](t, rec).Error)

	assert.Equal(t, 3, s.stock(t, 1))
}

func TestHTTP_LastUnitRace(t *testing.T) {
	s := newTestServer(t)

	var wg sync.WaitGroup
	codes := make([]int, 10)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := s.do(t, http.MethodPost, "/api/cart", fmt.Sprintf("s-%d", i), map[string]any{"product_id": 2})
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, c := range codes {
		if c == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusConflict, c)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 0, s.stock(t, 2))
}

func TestHTTP_CartAndCheckout(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 1, "quantity": 2})
	s.do(t, http.MethodPost, "/api/cart", "a", map[string]any{"product_id": 2, "quantity": 1})

	rec := s.do(t, http.MethodGet, "/api/cart", "a", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[cartResponse](t, rec)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("349.30")), cart.Total.String())

	rec = s.do(t, http.MethodPost, "/api/cart/checkout", "a", map[string]any{"name": "Ana", "email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[orderResponse](t, rec)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("349.30")))

	// stock stays sold, the cart is empty
	assert.Equal(t, 3, s.stock(t, 1))
	assert.Equal(t, 0, s.stock(t, 2))
	rec = s.do(t, http.MethodGet, "/api/cart", "a", nil)
	assert.Empty(t, decode[cartResponse](t, rec).Items)

	rec = s.do(t, http.MethodGet, "/api/orders/"+order.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decode[orderResponse](t, rec)
	assert.Equal(t, "ana@example.com", stored.CustomerEmail)
	assert.Len(t, stored.Items, 2)

	rec = s.do(t, http.MethodPost, "/api/cart/checkout", "a", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "cart_empty", decode[errorResponse](t, rec).Error)

	rec = s.do(t, http.MethodGet, "/api/orders/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_Subscribe(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/contact", "", map[string]string{"email": "ana@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/contact", "", map[string]string{"email": "invalid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_email", decode[errorResponse](t, rec).Error)
}

func TestHTTP_MetricsUseRouteTemplate(t *testing.T) {
	s := newTestServer(t)

	s.do(t, http.MethodGet, "/api/products/1", "", nil)
	s.do(t, http.MethodGet, "/api/products/2", "", nil)

	rec := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(),
		`storefront_http_requests_total{method="GET",route="/api/products/{id}",status="200"} 2`)
}

func TestHTTP_UnmatchedRequestsTaggedAndCounted(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = s.do(t, http.MethodDelete, "/health", "", nil, "X-Request-ID", "rid-405")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "rid-405", rec.Header().Get("X-Request-ID"))

	rec = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `storefront_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `storefront_http_requests_total{method="DELETE",route="unmatched",status="405"} 1`)
	assert.NotContains(t, body, `route="/nope"`)
}

func TestHTTP_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "X-Session-ID")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
