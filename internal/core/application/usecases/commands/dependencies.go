// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, session resolution,
// and aggregate mutation.
package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// ErrInvalidCredentials is returned on login when the username is unknown
// or the password does not match. The two cases are deliberately not
// distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")

// resolveUser maps a session identifier to the owning user aggregate.
// An unknown session becomes ports.ErrAuthenticationRequired; a session
// pointing at a vanished user is passed through as-is.
func resolveUser(
	ctx context.Context,
	sessions ports.SessionStore,
	users ports.UserRepository,
	sessionID string,
) (*account.User, error) {
	username, err := sessions.GetUsername(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrAuthenticationRequired
		}
		return nil, err
	}

	return users.GetByUsername(ctx, username)
}
