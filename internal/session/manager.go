package session

import (
	"encoding/json"
	"sync"

	"storefront/internal/user"
)

// currentUserKey is the single slot the session occupies in the store.
const currentUserKey = "currentUser"

// Manager owns the current-user pointer. It is either Anonymous (no user)
// or Authenticated, and the persisted slot always mirrors the in-memory
// state: a failed write is reported and the transition rolled back, so the
// two can never disagree.
type Manager struct {
	mu      sync.RWMutex
	users   *user.Service
	kv      KeyValueStore
	current *user.User
}

// NewManager restores the session from the store: if the slot holds a user
// record the session starts Authenticated, otherwise Anonymous. A corrupt
// or unreadable slot degrades to Anonymous rather than failing startup.
func NewManager(users *user.Service, kv KeyValueStore) *Manager {
	m := &Manager{users: users, kv: kv}

	raw, ok, err := kv.Get(currentUserKey)
	if err == nil && ok {
		var u user.User
		if json.Unmarshal(raw, &u) == nil && u.ID > 0 {
			m.current = &u
		}
	}
	return m
}

// Current returns the authenticated user, if any.
func (m *Manager) Current() (user.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return user.User{}, false
	}
	return *m.current, true
}

// Login checks the credential pair and, on match, makes the user current
// and persists the session. It reports only success or failure; no detail
// about which half of the pair was wrong leaks out.
func (m *Manager) Login(email, credential string) (user.User, bool) {
	u, err := m.users.Authenticate(email, credential)
	if err != nil {
		return user.User{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.persist(u); err != nil {
		return user.User{}, false
	}
	m.current = &u
	return u, true
}

// Register creates the account, makes it current and persists the session.
func (m *Manager) Register(profile user.User) (user.User, error) {
	created, err := m.users.Register(profile)
	if err != nil {
		return user.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.persist(created); err != nil {
		return user.User{}, err
	}
	m.current = &created
	return created, nil
}

// Logout clears the current user and the persisted slot.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.kv.Delete(currentUserKey); err != nil {
		return err
	}
	m.current = nil
	return nil
}

// UpdateProfile replaces the current user's record. Updating anyone else's
// record is refused outright instead of being silently ignored.
func (m *Manager) UpdateProfile(u user.User) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.ID != u.ID {
		return user.User{}, user.ErrPermissionDenied
	}

	prev := *m.current
	updated, err := m.users.Update(u.ID, u)
	if err != nil {
		return user.User{}, err
	}
	if err := m.persist(updated); err != nil {
		// keep the record and the slot in agreement
		m.users.Update(prev.ID, prev)
		return user.User{}, err
	}
	m.current = &updated
	return updated, nil
}

func (m *Manager) persist(u user.User) error {
	raw, err := json.Marshal(user.Sanitize(u))
	if err != nil {
		return err
	}
	return m.kv.Set(currentUserKey, raw)
}
