package repository

import (
	"context"
	"fmt"
	"sync"

	"walks-api/internal/model"

	"github.com/google/uuid"
)

// inMemoryUserStore is the test-facing UserStore backend. Roles must be
// registered up front, mirroring the seeded role set of the real schema.
type inMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by username
	roles map[string]model.Role // keyed by role name
}

// NewInMemoryUserStore returns a memory-backed UserStore holding the given roles
func NewInMemoryUserStore(roles ...model.Role) UserStore {
	s := &inMemoryUserStore{
		users: make(map[string]model.User),
		roles: make(map[string]model.Role),
	}
	for _, r := range roles {
		s.roles[r.Name] = r
	}
	return s
}

func (s *inMemoryUserStore) CreateWithRoles(ctx context.Context, user *model.User, roleNames []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return ErrDuplicateUsername
	}

	resolved := make([]model.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, ok := s.roles[name]
		if !ok {
			return fmt.Errorf("%w: [%s]", ErrRoleNotFound, name)
		}
		resolved = append(resolved, role)
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Roles = resolved
	s.users[user.Username] = *user
	return nil
}

func (s *inMemoryUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}
