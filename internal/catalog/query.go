package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by Query.SortBy.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Query is the predicate/sort set for a catalog listing. All active
// predicates are ANDed; an empty category or brand set means no filter,
// and MaxPrice <= 0 means no upper price bound.
type Query struct {
	Search     string
	Categories []string
	Brands     []string
	MinPrice   int
	MaxPrice   int
	SortBy     string
}

// FilterAndSort applies q to products and returns a new slice. It is a pure
// function: the input slice is never modified, and products whose sort keys
// compare equal keep their original relative order.
func FilterAndSort(products []Product, q Query) []Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(q.Categories) > 0 && !containsString(q.Categories, p.Category) {
			continue
		}
		if len(q.Brands) > 0 && !containsString(q.Brands, p.Brand) {
			continue
		}
		if p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		result = append(result, p)
	}

	switch q.SortBy {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortNewest:
		// explicit creation time, falling back to id for entries created
		// in the same instant
		sort.SliceStable(result, func(i, j int) bool {
			if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
				return result[i].CreatedAt.After(result[j].CreatedAt)
			}
			return result[i].ID > result[j].ID
		})
	}

	return result
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
