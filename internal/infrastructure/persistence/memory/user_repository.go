package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysage/v2/internal/domain/user"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// UserRepository implements user persistence in memory.
type UserRepository struct {
	users map[uuid.UUID]*user.User
	mutex sync.RWMutex
}

// NewUserRepository creates a new in-memory user repository.
func NewUserRepository() outbound.UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*user.User),
	}
}

// Create stores a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.users[u.ID()] = u
	return nil
}

// Update replaces a stored user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.users[u.ID()]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID()] = u
	return nil
}

// FindByID returns a user by ID.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

// FindByEmail returns a user by email, case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}
