package catalog

import (
	"testing"

	"storefront/internal/user"
)

func newTestService() *Service {
	return NewService(NewInMemoryRepository(fixtureProducts()))
}

func TestService_GetByID(t *testing.T) {
	s := newTestService()

	p, err := s.GetByID(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Orion Smart Watch" {
		t.Fatalf("expected Orion Smart Watch, got %q", p.Name)
	}

	if _, err := s.GetByID(999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_UpsertRequiresAdmin(t *testing.T) {
	s := newTestService()
	customer := user.User{ID: 5, Role: user.RoleCustomer}

	if _, err := s.Upsert(customer, Product{Name: "thing", Price: 1}); err != user.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err := s.Remove(customer, 1); err != user.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if len(s.List()) != 4 {
		t.Fatalf("catalog changed despite denied mutations")
	}
}

func TestService_UpsertCreatesAndUpdates(t *testing.T) {
	s := newTestService()
	admin := user.User{ID: 1, Role: user.RoleAdmin}

	created, err := s.Upsert(admin, Product{Name: "Garden Gnome", Price: 990, Stock: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a fresh id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}

	created.Price = 1290
	updated, err := s.Upsert(admin, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must keep the id, got %d", updated.ID)
	}

	got, err := s.GetByID(created.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Price != 1290 {
		t.Fatalf("expected updated price 1290, got %d", got.Price)
	}
}

func TestService_UpdateKeepsCreatedAt(t *testing.T) {
	s := newTestService()
	admin := user.User{ID: 1, Role: user.RoleAdmin}

	before, err := s.GetByID(4)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	// an edit payload typically carries no createdAt at all
	_, err = s.Upsert(admin, Product{ID: 4, Name: "Aura Headphones Pro", Price: 16500, Stock: 40})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	after, err := s.GetByID(4)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if after.CreatedAt.IsZero() {
		t.Fatalf("update wiped the creation timestamp")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("creation timestamp changed: %v != %v", after.CreatedAt, before.CreatedAt)
	}

	// the edited product must keep its place under the newest sort
	got := FilterAndSort(s.List(), Query{SortBy: SortNewest})
	if !equalIDs(ids(got), []int{4, 3, 2, 1}) {
		t.Fatalf("expected [4 3 2 1] after edit, got %v", ids(got))
	}
}

func TestService_Remove(t *testing.T) {
	s := newTestService()
	admin := user.User{ID: 1, Role: user.RoleAdmin}

	if err := s.Remove(admin, 3); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := s.GetByID(3); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := s.Remove(admin, 3); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_ResetProductsSeedsEmptyCatalog(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if err := s.ResetProducts(fixtureProducts()); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(s.List()) != 4 {
		t.Fatalf("expected 4 products after reset, got %d", len(s.List()))
	}

	// ids continue past the seeded maximum
	admin := user.User{ID: 1, Role: user.RoleAdmin}
	created, err := s.Upsert(admin, Product{Name: "Garden Gnome", Price: 990})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5 after seeding ids 1-4, got %d", created.ID)
	}
}

func TestRepository_CloneIsolation(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{
		ID:              1,
		Name:            "A",
		Images:          []string{"x.jpg"},
		Characteristics: map[string]string{"color": "red"},
	}})

	p, _ := repo.GetByID(1)
	p.Images[0] = "mutated.jpg"
	p.Characteristics["color"] = "blue"

	again, _ := repo.GetByID(1)
	if again.Images[0] != "x.jpg" || again.Characteristics["color"] != "red" {
		t.Fatalf("stored product was mutated through a returned copy")
	}
}
