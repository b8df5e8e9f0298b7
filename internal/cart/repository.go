package cart

import (
	"sync"

	"storefront/internal/catalog"
)

// Repository keys one ledger per user and serializes all mutation, so each
// ledger sees the single-writer ordering its invariants assume.
type Repository interface {
	Add(userID int, p catalog.Product, quantity int) ([]Line, error)
	SetQuantity(userID, productID, quantity int) ([]Line, error)
	Remove(userID, productID int) []Line
	Clear(userID int) error
	Lines(userID int) []Line
	Quantity(userID, productID int) int
	Total(userID int) int
}

type InMemoryRepository struct {
	mu      sync.Mutex
	ledgers map[int]*Ledger
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{ledgers: make(map[int]*Ledger)}
}

func (r *InMemoryRepository) ledger(userID int) *Ledger {
	g, ok := r.ledgers[userID]
	if !ok {
		g = NewLedger()
		r.ledgers[userID] = g
	}
	return g
}

func (r *InMemoryRepository) Add(userID int, p catalog.Product, quantity int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.ledger(userID)
	if err := g.Add(p, quantity); err != nil {
		return nil, err
	}
	return g.Lines(), nil
}

func (r *InMemoryRepository) SetQuantity(userID, productID, quantity int) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.ledger(userID)
	if err := g.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return g.Lines(), nil
}

func (r *InMemoryRepository) Remove(userID, productID int) []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	g := r.ledger(userID)
	g.Remove(productID)
	return g.Lines()
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ledger(userID).Clear()
	return nil
}

func (r *InMemoryRepository) Lines(userID int) []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(userID).Lines()
}

func (r *InMemoryRepository) Quantity(userID, productID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(userID).Quantity(productID)
}

func (r *InMemoryRepository) Total(userID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(userID).Total()
}
