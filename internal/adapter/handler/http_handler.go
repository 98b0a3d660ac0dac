package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/observability/logging"
)

const maxSessionIDLength = 128

// SessionResolver extracts the caller's session ID from a request. It must
// return a non-empty ID or an error; the request is rejected on error before
// any cart operation runs.
type SessionResolver func(r *http.Request) (string, error)

var errBadSession = errors.New("missing or malformed session id")

// HeaderSession reads a client-supplied session ID from the named header.
func HeaderSession(header string) SessionResolver {
	return func(r *http.Request) (string, error) {
		id := r.Header.Get(header)
		if id == "" || len(id) > maxSessionIDLength {
			return "", errBadSession
		}
		return id, nil
	}
}

type HTTPHandler struct {
	cartService    *service.CartService
	catalogService *service.CatalogService
	session        SessionResolver
	now            func() time.Time
}

type addToCartHTTPRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

type updateQuantityHTTPRequest struct {
	Quantity *int `json:"quantity"`
}

type checkoutHTTPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type contactHTTPRequest struct {
	Email string `json:"email"`
}

type productResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Badge       string          `json:"badge,omitempty"`
	Description string          `json:"description,omitempty"`
	Image       string          `json:"image"`
}

type cartLineResponse struct {
	SessionID string `json:"session_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type reservationResponse struct {
	Line    cartLineResponse `json:"line"`
	Stock   int              `json:"stock"`
	Removed bool             `json:"removed,omitempty"`
}

type cartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	SessionID string             `json:"session_id"`
	Items     []cartItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     decimal.Decimal    `json:"total"`
}

type orderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	SessionID     string              `json:"session_id"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Items         []orderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        domain.OrderStatus  `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
}

func NewHTTPHandler(cartService *service.CartService, catalogService *service.CatalogService, session SessionResolver) *HTTPHandler {
	return &HTTPHandler{
		cartService:    cartService,
		catalogService: catalogService,
		session:        session,
		now:            time.Now,
	}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(*product))
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	cart, err := h.cartService.ListCart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := cartResponse{
		SessionID: cart.SessionID,
		Items:     make([]cartItemResponse, 0, len(cart.Items)),
		ItemCount: cart.ItemCount,
		Total:     cart.Total,
	}
	for _, it := range cart.Items {
		resp.Items = append(resp.Items, cartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Stock:     it.Stock,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req addToCartHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.ProductID == 0 {
		writeBadRequest(w, "missing product_id")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	res, err := h.cartService.AddToCartOnce(r.Context(), r.Header.Get("Idempotency-Key"), sessionID, req.ProductID, quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(res))
}

func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	var req updateQuantityHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Quantity == nil {
		writeBadRequest(w, "missing quantity")
		return
	}

	res, err := h.cartService.UpdateQuantity(r.Context(), sessionID, productID, *req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productID")
	if !ok {
		return
	}

	res, err := h.cartService.RemoveFromCart(r.Context(), sessionID, productID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	// the body is optional: an anonymous checkout sends none
	var req checkoutHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, "invalid request body")
		return
	}

	order, err := h.cartService.CheckoutCart(r.Context(), sessionID, domain.Buyer{Name: req.Name, Email: req.Email})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.cartService.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (h *HTTPHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req contactHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	contact, err := h.catalogService.Subscribe(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "subscribed",
		"data": map[string]any{
			"id":         contact.ID,
			"email":      contact.Email,
			"created_at": contact.CreatedAt,
		},
	})
}

func (h *HTTPHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := h.session(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   string(domain.KindInvalidSession),
			Message: err.Error(),
		})
		return "", false
	}
	return id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}

// writeError maps a service error to its HTTP status. Transaction failures
// and unknown errors are logged and reported without detail.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindTransactionFailure {
		logging.FromContext(r.Context()).Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   string(domain.KindTransactionFailure),
			Message: "internal error",
		})
		return
	}

	status := http.StatusBadRequest
	switch de.Kind {
	case domain.KindProductNotFound, domain.KindCartLineNotFound, domain.KindOrderNotFound:
		status = http.StatusNotFound
	case domain.KindInsufficientStock, domain.KindDuplicateRequest, domain.KindCartEmpty:
		status = http.StatusConflict
	}

	resp := errorResponse{Error: string(de.Kind), Message: de.Message}
	if de.Kind == domain.KindInsufficientStock {
		available := de.Available
		resp.Available = &available
	}
	writeJSON(w, status, resp)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Badge:       p.Badge,
		Description: p.Description,
		Image:       p.Image,
	}
}

func toReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		Line: cartLineResponse{
			SessionID: res.Line.SessionID,
			ProductID: res.Line.ProductID,
			Quantity:  res.Line.Quantity,
		},
		Stock:   res.Stock,
		Removed: res.Removed,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	resp := orderResponse{
		ID:            o.ID,
		SessionID:     o.SessionID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         make([]orderItemResponse, 0, len(o.Items)),
		Total:         o.Total,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
