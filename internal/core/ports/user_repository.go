// Package ports declares the interfaces the application core depends on.
// Adapters under internal/adapters provide the implementations.
package ports

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/account"
)

// ErrUsernameAlreadyTaken is returned by UserRepository.Add when the username
// is registered to another user.
var ErrUsernameAlreadyTaken = errors.New("username already taken")

// UserRepository stores user aggregates keyed by their unique username.
// Users are never deleted.
type UserRepository interface {
	// Add stores a new user. Returns ErrUsernameAlreadyTaken when the
	// username is in use.
	Add(ctx context.Context, user *account.User) error

	// GetByUsername returns the user registered under the username.
	// Returns errs.ObjectNotFoundError when no such user exists.
	GetByUsername(ctx context.Context, username string) (*account.User, error)

	// All returns every registered user in registration order.
	All(ctx context.Context) ([]*account.User, error)
}
