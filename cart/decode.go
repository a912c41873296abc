package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"storefront/domain"
)

type persistedLine struct {
	Product  json.RawMessage `json:"product"`
	Quantity json.RawMessage `json:"quantity"`
}

// decodeLines validates and decodes a persisted cart. Any bad element rejects the whole value.
func decodeLines(raw string) ([]domain.CartLine, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, domain.NewMalformedStateError(domain.CartKey, err.Error())
	}
	if items == nil {
		return nil, domain.NewMalformedStateError(domain.CartKey, "not an array")
	}

	lines := make([]domain.CartLine, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for i, item := range items {
		line, err := decodeLine(item)
		if err != nil {
			return nil, domain.NewMalformedStateError(domain.CartKey, fmt.Sprintf("item %d: %v", i, err))
		}
		if _, dup := seen[line.Product.ID]; dup {
			return nil, domain.NewMalformedStateError(domain.CartKey, fmt.Sprintf("item %d: duplicate product id %d", i, line.Product.ID))
		}
		seen[line.Product.ID] = struct{}{}
		lines = append(lines, line)
	}
	return lines, nil
}

func decodeLine(item json.RawMessage) (domain.CartLine, error) {
	if !isObject(item) {
		return domain.CartLine{}, fmt.Errorf("not an object")
	}
	var pl persistedLine
	if err := json.Unmarshal(item, &pl); err != nil {
		return domain.CartLine{}, err
	}

	if !isObject(pl.Product) {
		return domain.CartLine{}, fmt.Errorf("product is not an object")
	}
	var p domain.Product
	if err := json.Unmarshal(pl.Product, &p); err != nil {
		return domain.CartLine{}, fmt.Errorf("product: %w", err)
	}

	q := bytes.TrimSpace(pl.Quantity)
	if len(q) == 0 || !(q[0] == '-' || (q[0] >= '0' && q[0] <= '9')) {
		return domain.CartLine{}, fmt.Errorf("quantity is not a number")
	}
	var f float64
	if err := json.Unmarshal(q, &f); err != nil {
		return domain.CartLine{}, fmt.Errorf("quantity: %w", err)
	}
	if f <= 0 {
		return domain.CartLine{}, fmt.Errorf("quantity must be positive, got %v", f)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 {
		return domain.CartLine{}, fmt.Errorf("quantity must be a whole number, got %v", f)
	}

	return domain.CartLine{Product: p, Quantity: int(f)}, nil
}

func isObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}
