// Package inmemory provides process-local implementations of the core ports.
// State lives for the lifetime of the process; nothing is persisted across
// restarts.
package inmemory

import (
	"context"
	"sync"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// UserRepository keeps user aggregates in a map guarded by a read-write
// mutex. The repository serializes membership changes only; mutations inside
// one user aggregate are serialized by the aggregate itself.
type UserRepository struct {
	mu sync.RWMutex

	// users maps username to aggregate; order keeps registration order
	// for All.
	users map[string]*account.User
	order []string
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*account.User),
	}
}

// Add stores a new user. Returns ports.ErrUsernameAlreadyTaken when the
// username is in use.
func (r *UserRepository) Add(_ context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username()]; exists {
		return ports.ErrUsernameAlreadyTaken
	}
	r.users[user.Username()] = user
	r.order = append(r.order, user.Username())
	return nil
}

// GetByUsername returns the user registered under the username.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*account.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, errs.NewObjectNotFoundError("username", username)
	}
	return user, nil
}

// All returns every registered user in registration order.
func (r *UserRepository) All(_ context.Context) ([]*account.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*account.User, 0, len(r.order))
	for _, username := range r.order {
		users = append(users, r.users[username])
	}
	return users, nil
}
