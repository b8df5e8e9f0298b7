package review

import (
	"sort"
	"sync"
)

// Repository is an append-only review ledger. Reviews are never edited or
// deleted.
type Repository interface {
	Add(r Review)
	ListForProduct(productID int) []Review
	CountForProduct(productID int) int
}

// InMemoryRepository keeps reviews newest-first by prepending on add, the
// order ListForProduct hands back.
type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
}

func NewInMemoryRepository(seed []Review) *InMemoryRepository {
	r := &InMemoryRepository{reviews: make([]Review, 0, len(seed))}
	for _, rv := range seed {
		r.reviews = append([]Review{rv}, r.reviews...)
	}
	return r
}

func (r *InMemoryRepository) Add(rv Review) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append([]Review{rv}, r.reviews...)
}

func (r *InMemoryRepository) ListForProduct(productID int) []Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	// newest-first by creation time; entries sharing a timestamp keep the
	// last-added-first order the storage already has
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *InMemoryRepository) CountForProduct(productID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			n++
		}
	}
	return n
}
