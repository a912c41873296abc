// Package catalog holds the in-memory product catalog, the single source of truth for stock ceilings.
package catalog

import (
	"fmt"
	"sync"

	"storefront/domain"
)

// Catalog is a thread-safe, insertion-ordered set of products.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[int]int
}

// New builds a catalog from products. Every product is validated and ids must be unique;
// all problems are reported together.
func New(products ...domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		index:    make(map[int]int, len(products)),
	}

	var collected error
	for _, p := range products {
		err := domain.ValidateProduct(p)
		if err == nil {
			if _, exists := c.index[p.ID]; exists {
				err = domain.NewDuplicateProductError(p.ID)
			}
		}
		if err != nil {
			if collected == nil {
				collected = err
			} else {
				collected = fmt.Errorf("%v; %w", collected, err)
			}
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	if collected != nil {
		return nil, collected
	}
	return c, nil
}

// Get returns the product with id.
func (c *Catalog) Get(id int) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return c.products[i], nil
}

// List returns a copy of every product in insertion order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Stock returns the current stock of the product with id.
func (c *Catalog) Stock(id int) (int, error) {
	p, err := c.Get(id)
	if err != nil {
		return 0, err
	}
	return p.Stock, nil
}

// SetStock replaces the stock level of a product. It is the replenishment hook for admin
// tooling; the cart only ever reads stock.
func (c *Catalog) SetStock(id, stock int) error {
	if stock < 0 {
		return domain.NewInvalidProductError("stock", "must be non-negative", stock)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return domain.NewProductNotFoundError(id)
	}
	c.products[i].Stock = stock
	return nil
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
