// Package domain defines core storefront types and interfaces.
package domain

import "context"

// Product represents a catalog product
type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Image       string  `json:"image" yaml:"image"`
	Category    string  `json:"category" yaml:"category"`
	Stock       int     `json:"stock" yaml:"stock"`
	Rating      float64 `json:"rating" yaml:"rating"`
}

// CartLine pairs a product snapshot with the quantity held in the cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// User is the identity kept by the mock session.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Store keys
const (
	CartKey = "cart"
	UserKey = "user"
)

// KeyValueStore is the string-valued local store the cart and session persist into.
type KeyValueStore interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ValidateProduct checks the fields every catalog product must satisfy.
func ValidateProduct(p Product) error {
	if p.ID <= 0 {
		return NewInvalidProductError("id", "must be positive", p.ID)
	}
	if p.Name == "" {
		return NewInvalidProductError("name", "cannot be empty", p.Name)
	}
	if p.Price < 0 {
		return NewInvalidProductError("price", "must be non-negative", p.Price)
	}
	if p.Stock < 0 {
		return NewInvalidProductError("stock", "must be non-negative", p.Stock)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return NewInvalidProductError("rating", "must be between 0 and 5", p.Rating)
	}
	return nil
}
