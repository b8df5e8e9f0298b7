package catalog

import (
	"time"

	"storefront/internal/user"
)

// ServiceInterface is what other packages depend on when they need product
// lookups (cart stock checks, order enrichment).
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Search lists the catalog through the given predicate/sort set.
func (s *Service) Search(q Query) []Product {
	return FilterAndSort(s.repo.List(), q)
}

// Upsert creates the product when its id is zero or unknown, otherwise
// replaces the stored entry. The role check lives here, not in the HTTP
// layer, so no caller can reach a catalog mutation without it.
func (s *Service) Upsert(actor user.User, p Product) (Product, error) {
	if actor.Role != user.RoleAdmin {
		return Product{}, user.ErrPermissionDenied
	}

	if p.ID != 0 {
		if stored, err := s.repo.GetByID(p.ID); err == nil {
			// an update payload rarely carries the original creation time;
			// keep the stored one or the product stops sorting as "newest"
			if p.CreatedAt.IsZero() {
				p.CreatedAt = stored.CreatedAt
			}
			return s.repo.Update(p.ID, p)
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(p)
}

func (s *Service) Remove(actor user.User, id int) error {
	if actor.Role != user.RoleAdmin {
		return user.ErrPermissionDenied
	}
	return s.repo.Delete(id)
}

// ResetProducts replaces all products with the given list (used for seeding).
func (s *Service) ResetProducts(products []Product) error {
	return s.repo.Reset(products)
}
