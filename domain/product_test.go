package domain

import (
	"context"
	"testing"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name        string
		product     Product
		expectError bool
		errField    string
	}{
		{
			name: "valid product",
			product: Product{
				ID:       1,
				Name:     "iPhone 15 Pro",
				Price:    999.99,
				Category: "Smartphones",
				Stock:    50,
				Rating:   4.8,
			},
			expectError: false,
		},
		{
			name:        "zero id",
			product:     Product{ID: 0, Name: "Book", Price: 10},
			expectError: true,
			errField:    "id",
		},
		{
			name:        "empty name",
			product:     Product{ID: 2, Name: "", Price: 10, Stock: 1},
			expectError: true,
			errField:    "name",
		},
		{
			name:        "negative price",
			product:     Product{ID: 3, Name: "Book", Price: -1, Stock: 1},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "negative stock",
			product:     Product{ID: 4, Name: "Pen", Price: 1, Stock: -5},
			expectError: true,
			errField:    "stock",
		},
		{
			name:        "rating above five",
			product:     Product{ID: 5, Name: "Pen", Price: 1, Stock: 1, Rating: 5.1},
			expectError: true,
			errField:    "rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}

				ipe, ok := err.(*InvalidProductError)
				if !ok {
					t.Fatalf("expected InvalidProductError, got %T", err)
				}

				if ipe.Field != tt.errField {
					t.Fatalf(
						"expected error field %q, got %q",
						tt.errField,
						ipe.Field,
					)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// ---- Interface compile-time test ----

// mockKeyValueStore ensures KeyValueStore interface stays stable
type mockKeyValueStore struct{}

func (m *mockKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (m *mockKeyValueStore) Set(ctx context.Context, key, value string) error {
	return nil
}

func (m *mockKeyValueStore) Remove(ctx context.Context, key string) error {
	return nil
}

// compile-time assertion
var _ KeyValueStore = (*mockKeyValueStore)(nil)
