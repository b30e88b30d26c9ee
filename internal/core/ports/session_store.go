package ports

import (
	"context"
	"errors"
)

// ErrAuthenticationRequired is returned by use cases when a request carries
// a session identifier that does not resolve to an active session.
var ErrAuthenticationRequired = errors.New("authentication required")

// SessionStore binds ephemeral session identifiers to usernames. Sessions
// exist from login to logout; they are not persisted.
type SessionStore interface {
	// Add binds a freshly minted session identifier to a username.
	Add(ctx context.Context, sessionID, username string) error

	// GetUsername resolves a session identifier to the username it was
	// issued for. Returns errs.ObjectNotFoundError for unknown or
	// invalidated identifiers. The lookup has no side effects.
	GetUsername(ctx context.Context, sessionID string) (string, error)

	// Remove invalidates a session. Removing an absent identifier is a
	// no-op, making logout idempotent.
	Remove(ctx context.Context, sessionID string) error
}
