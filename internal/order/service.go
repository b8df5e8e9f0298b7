package order

import (
	"errors"
	"time"

	"storefront/internal/cart"
	"storefront/internal/user"
)

var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrAuthenticationRequired = errors.New("authentication required")
)

// CartSource is the slice of the cart service an order placement needs:
// the lines to snapshot and the clear that completes the checkout.
type CartSource interface {
	Lines(userID int) []cart.Line
	Clear(userID int) error
}

// Service provides business logic for orders.
type Service struct {
	repo  Repository
	carts CartSource
}

func NewService(repo Repository, carts CartSource) *Service {
	return &Service{repo: repo, carts: carts}
}

// Place snapshots the actor's cart into a new Processing order and clears
// the cart. The two steps are one logical operation: the store is the sole
// writer and runs mutations to completion, so no caller can observe an
// order without the cleared cart or the reverse.
func (s *Service) Place(actor user.User, shipping user.Address, paymentMethod string) (Order, error) {
	if actor.ID <= 0 {
		return Order{}, ErrAuthenticationRequired
	}

	lines := s.carts.Lines(actor.ID)
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	total := 0
	for _, l := range lines {
		total += l.Product.Price * l.Quantity
	}

	now := time.Now().UTC()
	o := Order{
		UserID:          actor.ID,
		Items:           cart.CloneLines(lines),
		TotalAmount:     total,
		Status:          StatusProcessing,
		ShippingAddress: shipping,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(o)
	if err != nil {
		return Order{}, err
	}
	if err := s.carts.Clear(actor.ID); err != nil {
		return Order{}, err
	}
	return created, nil
}

// ListForUser returns the user's orders, newest first.
func (s *Service) ListForUser(userID int) []Order {
	return s.repo.ListByUser(userID)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// ListAll returns every order; admin only.
func (s *Service) ListAll(actor user.User) ([]Order, error) {
	if actor.Role != user.RoleAdmin {
		return nil, user.ErrPermissionDenied
	}
	return s.repo.ListAll(), nil
}

// UpdateStatus advances an order along the fulfillment state machine;
// admin only, legal transitions only.
func (s *Service) UpdateStatus(actor user.User, orderID int, next Status) (Order, error) {
	if actor.Role != user.RoleAdmin {
		return Order{}, user.ErrPermissionDenied
	}
	if !next.Valid() {
		return Order{}, ErrInvalidTransition
	}
	return s.repo.UpdateStatus(orderID, next)
}
