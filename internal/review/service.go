package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/user"
)

var (
	ErrValidation             = errors.New("rating must be between 1 and 5 and comment must not be empty")
	ErrAuthenticationRequired = errors.New("authentication required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add appends a review authored by the given user. Reviews cannot be
// anonymous and a review is either fully formed or rejected.
func (s *Service) Add(productID int, rating int, comment string, author *user.User) (Review, error) {
	if author == nil || author.ID <= 0 {
		return Review{}, ErrAuthenticationRequired
	}
	if rating < 1 || rating > 5 || strings.TrimSpace(comment) == "" {
		return Review{}, ErrValidation
	}

	rv := Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    author.ID,
		UserName:  author.FirstName(),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.Add(rv)
	return rv, nil
}

func (s *Service) ListForProduct(productID int) []Review {
	return s.repo.ListForProduct(productID)
}

func (s *Service) CountForProduct(productID int) int {
	return s.repo.CountForProduct(productID)
}
