// Package cart implements the shopping-cart engine: stock-bounded line quantities kept in
// sync with the local key-value store.
package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"storefront/domain"
	"storefront/metrics"
	"storefront/notify"
)

// ProductLookup resolves the current catalog record, and so the stock ceiling, of a product.
type ProductLookup interface {
	Get(id int) (domain.Product, error)
}

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Add(message string, severity notify.Severity, timeout time.Duration) string
}

// Snapshot is the cart state handed to subscribers.
type Snapshot struct {
	Lines     []domain.CartLine
	ItemCount int
	Total     decimal.Decimal
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

func WithMetrics(m *metrics.CartMetrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// Engine owns the cart lines. All mutations go through its methods; each one that changes
// or re-saves state writes the whole cart to the store under domain.CartKey.
type Engine struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	products ProductLookup
	store    domain.KeyValueStore
	logger   *slog.Logger
	notifier Notifier
	metrics  *metrics.CartMetrics

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewEngine returns an empty cart. Call Initialize to restore persisted state.
func NewEngine(products ProductLookup, store domain.KeyValueStore, opts ...Option) *Engine {
	e := &Engine{
		lines:    []domain.CartLine{},
		products: products,
		store:    store,
		logger:   slog.Default(),
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize replaces the in-memory cart with the persisted one. Malformed data is logged,
// removed from the store and replaced by an empty cart. Only a failed store read is returned.
func (e *Engine) Initialize(ctx context.Context) error {
	raw, ok, err := e.store.Get(ctx, domain.CartKey)
	if err != nil {
		e.mu.Lock()
		e.lines = []domain.CartLine{}
		e.mu.Unlock()
		return domain.NewPersistenceError(domain.CartKey, "read", err)
	}

	lines := []domain.CartLine{}
	if ok {
		decoded, err := decodeLines(raw)
		if err != nil {
			e.logger.Warn("discarding persisted cart", "error", err)
			e.metrics.LoadDiscarded()
			if rerr := e.store.Remove(ctx, domain.CartKey); rerr != nil {
				e.logger.Error("remove persisted cart failed", "error", rerr)
			}
		} else {
			lines = decoded
		}
	}

	e.mu.Lock()
	e.lines = lines
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.logger.Debug("cart initialized", "lines", len(snap.Lines), "item_count", snap.ItemCount)
	e.publish(snap)
	return nil
}

// AddToCart adds one unit of p. It fails with an InsufficientStockError, leaving the cart
// untouched, when the cart already holds p.Stock units.
func (e *Engine) AddToCart(ctx context.Context, p domain.Product) error {
	e.mu.Lock()
	idx := e.indexLocked(p.ID)
	held := 0
	if idx >= 0 {
		held = e.lines[idx].Quantity
	}
	if held >= p.Stock {
		e.mu.Unlock()
		e.metrics.Observe("add", metrics.ResultRejected)
		e.logger.Info("add to cart rejected", "product_id", p.ID, "stock", p.Stock, "in_cart", held)
		if e.notifier != nil {
			e.notifier.Add("Not enough stock available", notify.Error, notify.DefaultTimeout)
		}
		return domain.NewInsufficientStockError(p.ID, p.Stock, held)
	}

	if idx >= 0 {
		e.lines[idx].Quantity++
	} else {
		e.lines = append(e.lines, domain.CartLine{Product: p, Quantity: 1})
	}
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("add", metrics.ResultOK)
	e.publish(snap)
	return nil
}

// RemoveFromCart drops the line for id. A missing line is not an error.
func (e *Engine) RemoveFromCart(ctx context.Context, id int) {
	e.mu.Lock()
	result := metrics.ResultNoop
	if idx := e.indexLocked(id); idx >= 0 {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
		result = metrics.ResultOK
	}
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("remove", result)
	e.publish(snap)
}

// UpdateQuantity sets the quantity for id, silently clamped into [1, stock]. Nothing happens
// when the line or the catalog product is missing.
func (e *Engine) UpdateQuantity(ctx context.Context, id, quantity int) {
	e.mu.Lock()
	idx, product, ok := e.resolveLocked(id)
	if !ok {
		e.mu.Unlock()
		e.metrics.Observe("update", metrics.ResultNoop)
		return
	}

	e.lines[idx].Quantity = clamp(quantity, product.Stock)
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("update", metrics.ResultOK)
	e.publish(snap)
}

// IncrementQuantity adds one unit to an existing line unless it is at the stock ceiling.
func (e *Engine) IncrementQuantity(ctx context.Context, id int) {
	e.mu.Lock()
	idx, product, ok := e.resolveLocked(id)
	if !ok || e.lines[idx].Quantity >= product.Stock {
		e.mu.Unlock()
		e.metrics.Observe("increment", metrics.ResultNoop)
		return
	}

	e.lines[idx].Quantity++
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("increment", metrics.ResultOK)
	e.publish(snap)
}

// DecrementQuantity removes one unit from a line holding more than one. It never removes
// the line itself.
func (e *Engine) DecrementQuantity(ctx context.Context, id int) {
	e.mu.Lock()
	idx := e.indexLocked(id)
	if idx < 0 || e.lines[idx].Quantity <= 1 {
		e.mu.Unlock()
		e.metrics.Observe("decrement", metrics.ResultNoop)
		return
	}

	e.lines[idx].Quantity--
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("decrement", metrics.ResultOK)
	e.publish(snap)
}

// ClearCart empties the cart and persists the empty state.
func (e *Engine) ClearCart(ctx context.Context) {
	e.mu.Lock()
	e.lines = []domain.CartLine{}
	e.persistLocked(ctx)
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.metrics.Observe("clear", metrics.ResultOK)
	e.publish(snap)
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyLines(e.lines)
}

// Quantity returns the quantity held for id, or 0.
func (e *Engine) Quantity(id int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := e.indexLocked(id); idx >= 0 {
		return e.lines[idx].Quantity
	}
	return 0
}

// ItemCount is the sum of all line quantities.
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return itemCount(e.lines)
}

// TotalDecimal is the sum of price x quantity over the lines' captured product snapshots.
func (e *Engine) TotalDecimal() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return total(e.lines)
}

// Total is TotalDecimal as a float64.
func (e *Engine) Total() float64 {
	return e.TotalDecimal().InexactFloat64()
}

// Snapshot returns the current lines with their derived values.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe registers fn to receive a Snapshot after every cart change. The returned func
// cancels the subscription.
func (e *Engine) Subscribe(fn func(Snapshot)) (cancel func()) {
	e.subMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		delete(e.subs, id)
		e.subMu.Unlock()
	}
}

func (e *Engine) publish(snap Snapshot) {
	e.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// persistLocked writes the cart. Failures are logged and never undo the in-memory change.
func (e *Engine) persistLocked(ctx context.Context) {
	b, err := json.Marshal(e.lines)
	if err == nil {
		err = e.store.Set(ctx, domain.CartKey, string(b))
	}
	if err != nil {
		e.metrics.PersistFailed()
		e.logger.Error("failed to save cart",
			"error", domain.NewPersistenceError(domain.CartKey, "write", err))
	}
}

func (e *Engine) resolveLocked(id int) (int, domain.Product, bool) {
	idx := e.indexLocked(id)
	if idx < 0 {
		return -1, domain.Product{}, false
	}
	product, err := e.products.Get(id)
	if err != nil {
		return -1, domain.Product{}, false
	}
	return idx, product, true
}

func (e *Engine) indexLocked(id int) int {
	for i := range e.lines {
		if e.lines[i].Product.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Lines:     copyLines(e.lines),
		ItemCount: itemCount(e.lines),
		Total:     total(e.lines),
	}
}

// clamp bounds q to [1, stock]. The lower bound wins when stock is below 1.
func clamp(q, stock int) int {
	if q > stock {
		q = stock
	}
	if q < 1 {
		q = 1
	}
	return q
}

func itemCount(lines []domain.CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

func total(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
