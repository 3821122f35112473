// Package catalog implements the client-side browse logic: filtering an
// in-memory product collection by university, category, price ceiling and
// search term, then ordering it by a sort option. Everything here is pure;
// callers re-run Apply whenever an input changes.
package catalog

import (
	"sort"
	"strings"

	"github.com/varsitymarket/varsity-market-backend/internal/models"
)

// All is the wildcard value for the university and category filters.
const All = "All"

// DefaultMaxPrice is the initial price-slider ceiling.
const DefaultMaxPrice = 2000

// Criteria is the conjunction of the four browse filters. A product is
// retained only when every predicate holds.
type Criteria struct {
	University string
	Category   string
	MaxPrice   float64
	SearchTerm string
}

// DefaultCriteria returns the criteria a fresh browse screen starts with.
func DefaultCriteria() Criteria {
	return Criteria{
		University: All,
		Category:   All,
		MaxPrice:   DefaultMaxPrice,
	}
}

// Matches reports whether the product satisfies all four predicates. The
// search term matches case-insensitively against title or description.
func (c Criteria) Matches(p *models.Product) bool {
	if c.University != All && p.University != c.University {
		return false
	}
	if c.Category != All && p.Category != c.Category {
		return false
	}
	if p.Price > c.MaxPrice {
		return false
	}
	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}

// SortOption orders a filtered view.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
)

// Apply filters products by the criteria and sorts the result. The sort is
// stable: products with an equal sort key keep their filtered order. A zero
// CreatedAt sorts as the epoch. The input slice is not modified.
func Apply(products []models.Product, c Criteria, by SortOption) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for i := range products {
		if c.Matches(&products[i]) {
			filtered = append(filtered, products[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := &filtered[i], &filtered[j]
		switch by {
		case SortNewest:
			return a.CreatedAt.After(b.CreatedAt)
		case SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		default:
			return false
		}
	})

	return filtered
}
