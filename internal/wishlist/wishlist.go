package wishlist

import "storefront/internal/catalog"

// Set holds one owner's saved products. A product id appears at most once;
// Toggle is the only mutator, mirroring the heart-button affordance.
type Set struct {
	items []catalog.Product
}

func NewSet() *Set {
	return &Set{}
}

// Toggle adds the product when absent and removes it when present.
// It reports whether the product is in the set afterwards.
func (s *Set) Toggle(p catalog.Product) bool {
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, p.Clone())
	return true
}

func (s *Set) Contains(productID int) bool {
	for _, p := range s.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a deep copy of the set in insertion order.
func (s *Set) Items() []catalog.Product {
	out := make([]catalog.Product, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.Clone())
	}
	return out
}
