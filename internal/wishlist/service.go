package wishlist

import "storefront/internal/catalog"

type Service struct {
	repo     Repository
	products catalog.ServiceInterface
}

func NewService(repo Repository, products catalog.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// Toggle flips membership for the product and reports the resulting state.
func (s *Service) Toggle(userID, productID int) (bool, []catalog.Product, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return false, nil, err
	}
	in, items := s.repo.Toggle(userID, p)
	return in, items, nil
}

func (s *Service) Contains(userID, productID int) bool {
	return s.repo.Contains(userID, productID)
}

func (s *Service) Items(userID int) []catalog.Product {
	return s.repo.Items(userID)
}
