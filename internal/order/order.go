package order

import (
	"time"

	"storefront/internal/cart"
	"storefront/internal/user"
)

// Status is the lifecycle state of an order. Orders are only ever created
// in Processing; Delivered and Cancelled are terminal.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// CanTransitionTo reports whether next is a legal fulfillment step:
// Processing → Shipped → Delivered, with Cancelled reachable from any
// non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered || next == StatusCancelled
	default:
		return false
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is an immutable snapshot of a checkout. Items are deep-copied from
// the cart at placement, so later cart or catalog mutation never reaches a
// recorded order.
type Order struct {
	ID              int          `json:"orderId"`
	UserID          int          `json:"userId"`
	Items           []cart.Line  `json:"items"`
	TotalAmount     int          `json:"totalAmount"`
	Status          Status       `json:"status"`
	ShippingAddress user.Address `json:"shippingAddress"`
	PaymentMethod   string       `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func (o Order) clone() Order {
	o.Items = cart.CloneLines(o.Items)
	return o
}
