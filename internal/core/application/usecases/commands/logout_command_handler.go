package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// LogoutCommandHandler closes sessions. Logging out an already-closed or
// unknown session succeeds, matching the idempotent store contract.
type LogoutCommandHandler struct {
	sessions ports.SessionStore
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(sessions ports.SessionStore) LogoutCommandHandler {
	return LogoutCommandHandler{
		sessions: sessions,
	}
}

// Handle removes the session from the store.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Remove(ctx, cmd.SessionID())
}
