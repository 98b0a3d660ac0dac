package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

var errInjected = errors.New("injected failure")

type lineKey struct {
	session string
	product int64
}

// Mock DatabaseRepository. InTx holds the mutex for the whole transaction,
// which gives the same serialisation a row lock gives per product.
type mockDB struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	lines    map[lineKey]domain.CartLine
	orders   map[string]domain.Order
	contacts []domain.Contact

	// failOn names a Tx method that returns errInjected when called
	failOn string
	txErr  error

	// interleave runs once, just before the named Tx method, standing in for
	// another transaction that commits at that point
	interleave map[string]func()
	undo       *mockState
}

type mockState struct {
	products map[int64]domain.Product
	lines    map[lineKey]domain.CartLine
	orders   map[string]domain.Order
}

func newMockDB() *mockDB {
	return &mockDB{
		products: make(map[int64]domain.Product),
		lines:    make(map[lineKey]domain.CartLine),
		orders:   make(map[string]domain.Order),
	}
}

func (m *mockDB) addProduct(id int64, stock int, price string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[id] = domain.Product{
		ID:    id,
		Name:  "product",
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func (m *mockDB) stock(id int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id].Stock
}

func (m *mockDB) lineQuantity(session string, id int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lines[lineKey{session, id}].Quantity
}

func (m *mockDB) reserved(id int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for k, l := range m.lines {
		if k.product == id {
			total += l.Quantity
		}
	}
	return total
}

func (m *mockDB) setFailOn(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOn = method
}

func (m *mockDB) interleaveBefore(method string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.interleave == nil {
		m.interleave = make(map[string]func())
	}
	m.interleave[method] = fn
}

// committedRemove applies a RemoveFromCart that another transaction commits
// while mu is held. It also lands in the rollback state so it survives a
// rollback of the running transaction.
func (m *mockDB) committedRemove(session string, id int64) {
	apply := func(products map[int64]domain.Product, lines map[lineKey]domain.CartLine) {
		k := lineKey{session, id}
		l, ok := lines[k]
		if !ok {
			return
		}
		delete(lines, k)
		p := products[id]
		p.Stock += l.Quantity
		products[id] = p
	}
	apply(m.products, m.lines)
	if m.undo != nil {
		apply(m.undo.products, m.undo.lines)
	}
}

func (m *mockDB) InTx(ctx context.Context, fn func(ctx context.Context, tx port.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.txErr != nil {
		return m.txErr
	}

	m.undo = &mockState{
		products: maps.Clone(m.products),
		lines:    maps.Clone(m.lines),
		orders:   maps.Clone(m.orders),
	}
	defer func() { m.undo = nil }()
	rollback := func() {
		m.products, m.lines, m.orders = m.undo.products, m.undo.lines, m.undo.orders
	}

	if err := fn(ctx, &mockTx{db: m}); err != nil {
		rollback()
		return err
	}
	if err := ctx.Err(); err != nil {
		rollback()
		return err
	}
	return nil
}

func (m *mockDB) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockDB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Product
	for _, id := range slices.Sorted(maps.Keys(m.products)) {
		out = append(out, m.products[id])
	}
	return out, nil
}

func (m *mockDB) UpsertProduct(ctx context.Context, product domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = product
	return nil
}

func (m *mockDB) ListCart(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listLines(sessionID), nil
}

func (m *mockDB) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *mockDB) SaveContact(ctx context.Context, email string) (domain.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := domain.Contact{ID: int64(len(m.contacts) + 1), Email: email}
	m.contacts = append(m.contacts, c)
	return c, nil
}

func (m *mockDB) listLines(sessionID string) []domain.CartItem {
	var items []domain.CartItem
	for k, l := range m.lines {
		if k.session != sessionID {
			continue
		}
		p := m.products[k.product]
		items = append(items, domain.CartItem{CartLine: l, Name: p.Name, Price: p.Price, Stock: p.Stock})
	}
	slices.SortFunc(items, func(a, b domain.CartItem) int { return int(a.ProductID - b.ProductID) })
	return items
}

// mockTx runs with mockDB.mu already held. Plain ListLines behaves like a
// non-locking consistent read: every call in one transaction returns the
// snapshot taken by the first, plus the transaction's own line writes.
type mockTx struct {
	db       *mockDB
	snapshot []domain.CartItem
	read     bool
}

func (t *mockTx) enter(method string) error {
	if fn, ok := t.db.interleave[method]; ok {
		delete(t.db.interleave, method)
		fn()
	}
	if t.db.failOn == method {
		return errInjected
	}
	return nil
}

func (t *mockTx) GetProductForUpdate(ctx context.Context, productID int64) (*domain.Product, error) {
	if err := t.enter("GetProductForUpdate"); err != nil {
		return nil, err
	}
	p, ok := t.db.products[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *mockTx) AdjustStock(ctx context.Context, productID int64, delta int) error {
	if err := t.enter("AdjustStock"); err != nil {
		return err
	}
	p, ok := t.db.products[productID]
	if !ok || p.Stock+delta < 0 {
		return errors.New("stock conflict")
	}
	p.Stock += delta
	t.db.products[productID] = p
	return nil
}

func (t *mockTx) GetLine(ctx context.Context, sessionID string, productID int64) (*domain.CartLine, error) {
	l, ok := t.db.lines[lineKey{sessionID, productID}]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (t *mockTx) UpsertLine(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error) {
	if err := t.enter("UpsertLine"); err != nil {
		return domain.CartLine{}, err
	}
	k := lineKey{sessionID, productID}
	l := t.db.lines[k]
	l.SessionID, l.ProductID = sessionID, productID
	l.Quantity += quantity
	t.db.lines[k] = l
	t.read = false
	return l, nil
}

func (t *mockTx) SetLineQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (domain.CartLine, error) {
	k := lineKey{sessionID, productID}
	l := t.db.lines[k]
	l.Quantity = quantity
	t.db.lines[k] = l
	t.read = false
	return l, nil
}

func (t *mockTx) DeleteLine(ctx context.Context, sessionID string, productID int64) (bool, error) {
	if err := t.enter("DeleteLine"); err != nil {
		return false, err
	}
	k := lineKey{sessionID, productID}
	if _, ok := t.db.lines[k]; !ok {
		return false, nil
	}
	delete(t.db.lines, k)
	t.read = false
	return true, nil
}

func (t *mockTx) ListLines(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if !t.read {
		t.snapshot, t.read = t.db.listLines(sessionID), true
	}
	return slices.Clone(t.snapshot), nil
}

func (t *mockTx) ListLinesForUpdate(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if err := t.enter("ListLinesForUpdate"); err != nil {
		return nil, err
	}
	return t.db.listLines(sessionID), nil
}

func (t *mockTx) CreateOrder(ctx context.Context, order domain.Order) error {
	if err := t.enter("CreateOrder"); err != nil {
		return err
	}
	t.db.orders[order.ID] = order
	return nil
}

// Mock CacheRepository
type mockCacheRepo struct {
	idempotencySet map[string]bool
	mu             sync.Mutex
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{idempotencySet: make(map[string]bool)}
}

func (m *mockCacheRepo) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.idempotencySet[key] {
		return false, nil
	}
	m.idempotencySet[key] = true
	return true, nil
}

func (m *mockCacheRepo) ReleaseIdempotency(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.idempotencySet, key)
	return nil
}

func (m *mockCacheRepo) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idempotencySet[key]
}

// Mock OrderNotifier
type mockNotifier struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
	sent   chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan struct{}, 100)}
}

func (m *mockNotifier) NotifyOrderPlaced(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	m.orders = append(m.orders, order)
	m.mu.Unlock()
	m.sent <- struct{}{}
	return m.err
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}
