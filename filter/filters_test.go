package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/catalog"
	"storefront/domain"
)

func TestFilters_StartsReset(t *testing.T) {
	cat := catalog.NewDefault()
	f := NewFilters(cat.List)

	assert.Equal(t, Criteria{MaxPrice: 2499.99, SortBy: SortRating}, f.Criteria())
	assert.Len(t, f.Products(), cat.Len())
	assert.Len(t, f.Categories(), 8)
}

func TestFilters_SettersAndReset(t *testing.T) {
	f := NewFilters(catalog.NewDefault().List)

	f.SetSearch("console")
	f.SetCategory("Gaming")
	f.SetMaxPrice(400)
	f.SetSort(SortName)
	assert.Equal(t, []int{7}, ids(f.Products()))

	f.Reset()
	assert.Equal(t, Criteria{MaxPrice: 2499.99, SortBy: SortRating}, f.Criteria())
	assert.Len(t, f.Products(), 10)
}

func TestFilters_ResetUsesCurrentCatalogMax(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "A", Price: 10, Category: "X"},
		{ID: 2, Name: "B", Price: 20, Category: "Y"},
	}
	f := NewFilters(func() []domain.Product { return products })
	assert.Equal(t, 20.0, f.Criteria().MaxPrice)

	products = append(products, domain.Product{ID: 3, Name: "C", Price: 5000, Category: "Z"})
	assert.Equal(t, 5000.0, f.MaxAvailablePrice())
	assert.Len(t, f.Products(), 2, "stale ceiling still applies until reset")

	f.Reset()
	assert.Equal(t, 5000.0, f.Criteria().MaxPrice)
	assert.Len(t, f.Products(), 3)
}
