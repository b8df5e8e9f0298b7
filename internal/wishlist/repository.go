package wishlist

import (
	"sync"

	"storefront/internal/catalog"
)

// Repository provides access to per-user wishlists.
type Repository interface {
	Toggle(userID int, p catalog.Product) (inSet bool, items []catalog.Product)
	Contains(userID, productID int) bool
	Items(userID int) []catalog.Product
}

type InMemoryRepository struct {
	mu   sync.Mutex
	sets map[int]*Set
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sets: make(map[int]*Set)}
}

func (r *InMemoryRepository) set(userID int) *Set {
	s, ok := r.sets[userID]
	if !ok {
		s = NewSet()
		r.sets[userID] = s
	}
	return s
}

func (r *InMemoryRepository) Toggle(userID int, p catalog.Product) (bool, []catalog.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.set(userID)
	in := s.Toggle(p)
	return in, s.Items()
}

func (r *InMemoryRepository) Contains(userID, productID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set(userID).Contains(productID)
}

func (r *InMemoryRepository) Items(userID int) []catalog.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set(userID).Items()
}
