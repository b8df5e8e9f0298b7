package catalog

import (
	"testing"
	"time"
)

func fixtureProducts() []Product {
	base := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, Name: "Cosmos Sneakers", Category: "Footwear", Brand: "Galaxy Sport", Price: 12999, Rating: 4.5, Stock: 50, CreatedAt: base},
		{ID: 2, Name: "Orion Smart Watch", Category: "Electronics", Brand: "TechWorld", Price: 19990, Rating: 4.8, Stock: 30, CreatedAt: base.AddDate(0, 0, 14)},
		{ID: 3, Name: "Polar Star Jacket", Category: "Clothing", Brand: "Extreme Gear", Price: 25000, Rating: 4.9, Stock: 20, CreatedAt: base.AddDate(0, 1, 0)},
		{ID: 4, Name: "Aura Headphones", Category: "Electronics", Brand: "SoundExpert", Price: 15500, Rating: 4.7, Stock: 60, CreatedAt: base.AddDate(0, 1, 19)},
	}
}

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterAndSort_NoPredicatesReturnsAll(t *testing.T) {
	products := fixtureProducts()
	got := FilterAndSort(products, Query{})
	if !equalIDs(ids(got), []int{1, 2, 3, 4}) {
		t.Fatalf("expected all products in original order, got %v", ids(got))
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	FilterAndSort(products, Query{SortBy: SortPriceDesc})
	if !equalIDs(ids(products), []int{1, 2, 3, 4}) {
		t.Fatalf("input slice was reordered: %v", ids(products))
	}
}

func TestFilterAndSort_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{Search: "oRiOn"})
	if !equalIDs(ids(got), []int{2}) {
		t.Fatalf("expected [2], got %v", ids(got))
	}
}

func TestFilterAndSort_PredicatesAreANDed(t *testing.T) {
	q := Query{
		Categories: []string{"Electronics"},
		Brands:     []string{"TechWorld", "SoundExpert"},
		MinPrice:   16000,
		MaxPrice:   30000,
	}
	got := FilterAndSort(fixtureProducts(), q)
	if !equalIDs(ids(got), []int{2}) {
		t.Fatalf("expected [2], got %v", ids(got))
	}
	// every returned product satisfies every active predicate
	for _, p := range got {
		if p.Category != "Electronics" {
			t.Fatalf("category predicate violated by %d", p.ID)
		}
		if p.Price < q.MinPrice || p.Price > q.MaxPrice {
			t.Fatalf("price predicate violated by %d", p.ID)
		}
	}
}

func TestFilterAndSort_EmptyCategorySetMeansNoFilter(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{Categories: nil, Brands: nil})
	if len(got) != 4 {
		t.Fatalf("expected 4 products, got %d", len(got))
	}
}

func TestFilterAndSort_PriceBoundsAreInclusive(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{MinPrice: 12999, MaxPrice: 12999})
	if !equalIDs(ids(got), []int{1}) {
		t.Fatalf("expected [1], got %v", ids(got))
	}
}

func TestFilterAndSort_OutputIsSubsequence(t *testing.T) {
	products := fixtureProducts()
	got := FilterAndSort(products, Query{Categories: []string{"Electronics"}})
	// filtered output preserves the input's relative order
	if !equalIDs(ids(got), []int{2, 4}) {
		t.Fatalf("expected subsequence [2 4], got %v", ids(got))
	}
}

func TestFilterAndSort_PriceAscending(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{SortBy: SortPriceAsc})
	if !equalIDs(ids(got), []int{1, 4, 2, 3}) {
		t.Fatalf("expected [1 4 2 3], got %v", ids(got))
	}
}

func TestFilterAndSort_PriceDescending(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{SortBy: SortPriceDesc})
	if !equalIDs(ids(got), []int{3, 2, 4, 1}) {
		t.Fatalf("expected [3 2 4 1], got %v", ids(got))
	}
}

func TestFilterAndSort_RatingDescending(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{SortBy: SortRating})
	if !equalIDs(ids(got), []int{3, 2, 4, 1}) {
		t.Fatalf("expected [3 2 4 1], got %v", ids(got))
	}
}

func TestFilterAndSort_NewestUsesCreationTime(t *testing.T) {
	got := FilterAndSort(fixtureProducts(), Query{SortBy: SortNewest})
	if !equalIDs(ids(got), []int{4, 3, 2, 1}) {
		t.Fatalf("expected [4 3 2 1], got %v", ids(got))
	}
}

func TestFilterAndSort_NewestBreaksTimestampTiesByID(t *testing.T) {
	ts := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		{ID: 7, Name: "A", CreatedAt: ts},
		{ID: 9, Name: "B", CreatedAt: ts},
		{ID: 8, Name: "C", CreatedAt: ts},
	}
	got := FilterAndSort(products, Query{SortBy: SortNewest})
	if !equalIDs(ids(got), []int{9, 8, 7}) {
		t.Fatalf("expected [9 8 7], got %v", ids(got))
	}
}

func TestFilterAndSort_StableForEqualKeys(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "A", Price: 100},
		{ID: 2, Name: "B", Price: 100},
		{ID: 3, Name: "C", Price: 100},
	}
	got := FilterAndSort(products, Query{SortBy: SortPriceAsc})
	if !equalIDs(ids(got), []int{1, 2, 3}) {
		t.Fatalf("equal keys must keep original order, got %v", ids(got))
	}
}
