package wishlist

import (
	"testing"

	"storefront/internal/catalog"
)

func sneakers() catalog.Product {
	return catalog.Product{ID: 1, Name: "Cosmos Sneakers", Price: 12999}
}

func TestSet_ToggleIsInvolution(t *testing.T) {
	s := NewSet()

	if in := s.Toggle(sneakers()); !in {
		t.Fatalf("first toggle should add")
	}
	if !s.Contains(1) {
		t.Fatalf("expected product in set after first toggle")
	}

	if in := s.Toggle(sneakers()); in {
		t.Fatalf("second toggle should remove")
	}
	if s.Contains(1) {
		t.Fatalf("two toggles must restore original membership")
	}
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty set, got %d items", len(s.Items()))
	}
}

func TestSet_NoDuplicates(t *testing.T) {
	s := NewSet()
	s.Toggle(sneakers())
	s.Toggle(catalog.Product{ID: 2, Name: "Watch"})
	s.Toggle(sneakers())
	s.Toggle(sneakers())

	count := 0
	for _, p := range s.Items() {
		if p.ID == 1 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected product 1 to appear exactly once, got %d", count)
	}
}

func TestService_ToggleAndContains(t *testing.T) {
	catalogRepo := catalog.NewInMemoryRepository([]catalog.Product{sneakers()})
	svc := NewService(NewInMemoryRepository(), catalog.NewService(catalogRepo))

	in, items, err := svc.Toggle(42, 1)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !in || len(items) != 1 {
		t.Fatalf("expected product added, got in=%v items=%d", in, len(items))
	}
	if !svc.Contains(42, 1) {
		t.Fatalf("expected Contains to report membership")
	}
	if svc.Contains(7, 1) {
		t.Fatalf("wishlists must be per user")
	}

	if _, _, err := svc.Toggle(42, 999); err != catalog.ErrNotFound {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}
}
