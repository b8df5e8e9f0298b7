package cart

import (
	"storefront/internal/catalog"
)

// Service orchestrates cart operations. Stock is enforced here: adding to
// an out-of-stock product fails, and a quantity can never be pushed past
// the product's current stock — it is capped instead of rejected, matching
// the quantity-stepper behavior of the storefront UI.
type Service struct {
	repo     Repository
	products catalog.ServiceInterface
}

func NewService(repo Repository, products catalog.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(userID, productID, quantity int) ([]Line, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p.Stock < 1 {
		return nil, ErrInsufficientStock
	}

	// cap the merged quantity at stock
	if have := s.repo.Quantity(userID, productID); have+quantity > p.Stock {
		quantity = p.Stock - have
		if quantity < 1 {
			return s.repo.Lines(userID), nil
		}
	}

	return s.repo.Add(userID, p, quantity)
}

func (s *Service) SetQuantity(userID, productID, quantity int) ([]Line, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p.Stock < 1 {
		return nil, ErrInsufficientStock
	}
	if quantity > p.Stock {
		quantity = p.Stock
	}

	return s.repo.SetQuantity(userID, productID, quantity)
}

func (s *Service) Remove(userID, productID int) []Line {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}

func (s *Service) Lines(userID int) []Line {
	return s.repo.Lines(userID)
}

func (s *Service) Total(userID int) int {
	return s.repo.Total(userID)
}
