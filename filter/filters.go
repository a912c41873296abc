package filter

import (
	"sync"

	"storefront/domain"
)

// Source returns the current catalog contents.
type Source func() []domain.Product

// Filters holds the shopper's criteria over a live product source. Derived values are
// recomputed on every read, so catalog changes show up without notification.
type Filters struct {
	mu       sync.RWMutex
	source   Source
	criteria Criteria
}

// NewFilters returns filters in their reset state.
func NewFilters(source Source) *Filters {
	f := &Filters{source: source}
	f.Reset()
	return f
}

// Reset clears search and category, sets the price ceiling to the catalog's current
// maximum and sorts by rating.
func (f *Filters) Reset() {
	highest := MaxPrice(f.source())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria = Criteria{MaxPrice: highest, SortBy: SortRating}
}

func (f *Filters) Criteria() Criteria {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.criteria
}

func (f *Filters) SetSearch(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.Search = q
}

func (f *Filters) SetCategory(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.Category = c
}

func (f *Filters) SetMaxPrice(p float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.MaxPrice = p
}

func (f *Filters) SetSort(k SortKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.criteria.SortBy = k
}

// Products is the filtered, sorted view.
func (f *Filters) Products() []domain.Product {
	return Apply(f.source(), f.Criteria())
}

func (f *Filters) Categories() []string {
	return Categories(f.source())
}

func (f *Filters) MaxAvailablePrice() float64 {
	return MaxPrice(f.source())
}
