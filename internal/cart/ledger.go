package cart

import (
	"errors"

	"storefront/internal/catalog"
)

var (
	ErrNotFound          = errors.New("cart line not found")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("product is out of stock")
)

// Line is one cart entry: a product snapshot plus the desired quantity.
// A ledger holds at most one line per product id, and a quantity is always
// at least 1 — absence is represented by removal, never by a zero line.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (l Line) clone() Line {
	l.Product = l.Product.Clone()
	return l
}

// CloneLines deep-copies a slice of lines. Order placement uses it to
// snapshot the cart so later cart mutation cannot reach into the order.
func CloneLines(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.clone())
	}
	return out
}

// Ledger is a single owner's cart. It is not safe for concurrent use;
// the repository serializes access to it.
type Ledger struct {
	lines []Line
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add merges quantity into an existing line for the product, or appends a
// new line. Lines keep insertion order.
func (g *Ledger) Add(p catalog.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range g.lines {
		if g.lines[i].Product.ID == p.ID {
			g.lines[i].Quantity += quantity
			return nil
		}
	}
	g.lines = append(g.lines, Line{Product: p.Clone(), Quantity: quantity})
	return nil
}

// SetQuantity replaces a line's quantity. The ledger itself only insists
// the value stays positive; the stock cap is the service's business.
func (g *Ledger) SetQuantity(productID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range g.lines {
		if g.lines[i].Product.ID == productID {
			g.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the line for the product if present, and is a no-op
// otherwise.
func (g *Ledger) Remove(productID int) {
	for i := range g.lines {
		if g.lines[i].Product.ID == productID {
			g.lines = append(g.lines[:i], g.lines[i+1:]...)
			return
		}
	}
}

func (g *Ledger) Clear() {
	g.lines = nil
}

// Quantity returns the quantity for the product, or 0 when absent.
func (g *Ledger) Quantity(productID int) int {
	for _, l := range g.lines {
		if l.Product.ID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Total is the sum of price×quantity across all lines.
func (g *Ledger) Total() int {
	total := 0
	for _, l := range g.lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}

// Lines returns a deep copy of the ledger contents.
func (g *Ledger) Lines() []Line {
	return CloneLines(g.lines)
}
