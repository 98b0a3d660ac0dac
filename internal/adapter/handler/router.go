package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/observability/logging"
	"github.com/rl1809/storefront/internal/observability/metrics"
)

// RouterConfig carries the cross-cutting pieces wrapped around the routes.
type RouterConfig struct {
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
	CORSOrigins   []string
	SessionHeader string
}

// NewRouter registers the HTTP routes and returns the handler with middleware.
func NewRouter(h *HTTPHandler, cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)

	api.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", h.AddToCart).Methods(http.MethodPost)
	api.HandleFunc("/cart/checkout", h.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/cart/{productID:[0-9]+}", h.UpdateQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/{productID:[0-9]+}", h.RemoveFromCart).Methods(http.MethodDelete)

	api.HandleFunc("/orders/{id}", h.GetOrder).Methods(http.MethodGet)
	api.HandleFunc("/contact", h.Subscribe).Methods(http.MethodPost)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Idempotency-Key", "X-Request-ID", cfg.SessionHeader}),
		handlers.ExposedHeaders([]string{"X-Request-ID"}),
		handlers.AllowCredentials(),
	)

	// Outside the router so 404 and 405 responses are tagged and counted too.
	return withRequestID(cfg.Logger)(withObservability(cfg.Metrics, r)(cors(r)))
}

// unmatchedRoute labels requests no route accepted.
const unmatchedRoute = "unmatched"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// withRequestID echoes or generates X-Request-ID and stores a request-scoped
// logger carrying it.
func withRequestID(base *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)

			ctx := logging.ContextWithLogger(r.Context(), base.With(zap.String("request_id", rid)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withObservability(m *metrics.Metrics, router *mux.Router) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			latency := time.Since(start)

			// route templates keep label cardinality low
			route := routeTemplate(router, r)
			m.ObserveHTTP(r.Method, route, rec.status, latency)

			logging.FromContext(r.Context()).Info("http_request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", rec.status),
				zap.Int("bytes", rec.bytes),
				zap.Float64("latency_ms", float64(latency.Microseconds())/1000.0),
			)
		})
	}
}

func routeTemplate(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
