package order

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Repository defines persistence operations for orders.
type Repository interface {
	Create(o Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) []Order
	ListAll() []Order
	UpdateStatus(id int, next Status) (Order, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	nextID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{
		orders: make([]Order, 0, len(seed)),
		nextID: 1,
	}

	maxID := 0
	for _, o := range seed {
		r.orders = append(r.orders, o.clone())
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.ID == 0 {
		o.ID = r.nextID
		r.nextID++
	}
	r.orders = append(r.orders, o.clone())
	return o, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o.clone())
		}
	}
	sortNewestFirst(out)
	return out
}

func (r *InMemoryRepository) ListAll() []Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.clone())
	}
	sortNewestFirst(out)
	return out
}

func (r *InMemoryRepository) UpdateStatus(id int, next Status) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			if !r.orders[i].Status.CanTransitionTo(next) {
				return Order{}, ErrInvalidTransition
			}
			r.orders[i].Status = next
			r.orders[i].UpdatedAt = time.Now().UTC()
			return r.orders[i].clone(), nil
		}
	}
	return Order{}, ErrNotFound
}

func sortNewestFirst(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
}
