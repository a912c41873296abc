// Package filter derives the browsable product view from a catalog snapshot and the
// shopper's search, category, price and sort choices.
package filter

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/domain"
)

// SortKey selects the ordering of filtered products.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortName      SortKey = "name"
	SortRating    SortKey = "rating"
)

// Criteria are the transient filter inputs.
type Criteria struct {
	Search   string
	Category string
	MaxPrice float64
	SortBy   SortKey
}

// Apply filters products by category, price ceiling and search text, then stable-sorts the
// survivors. The input slice is left untouched.
func Apply(products []domain.Product, c Criteria) []domain.Product {
	search := strings.ToLower(c.Search)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if p.Price > c.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}

	switch c.SortBy {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		col := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out
}

// Categories returns the distinct category labels in first-seen order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// MaxPrice returns the highest price in products, or 0 when there are none.
func MaxPrice(products []domain.Product) float64 {
	highest := 0.0
	for i, p := range products {
		if i == 0 || p.Price > highest {
			highest = p.Price
		}
	}
	return highest
}

// ParseSortKey maps user input onto a SortKey. ok is false for unknown keys.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPriceAsc, SortPriceDesc, SortName, SortRating:
		return k, true
	default:
		return k, false
	}
}
