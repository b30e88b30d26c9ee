package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// RemoveTagCommandHandler detaches a tag from one of the caller's shipments.
type RemoveTagCommandHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewRemoveTagCommandHandler creates a handler for tag removal.
func NewRemoveTagCommandHandler(users ports.UserRepository, sessions ports.SessionStore) RemoveTagCommandHandler {
	return RemoveTagCommandHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle finds the shipment in the caller's collection and removes the tag.
// Removing an absent tag is a no-op.
func (h *RemoveTagCommandHandler) Handle(ctx context.Context, cmd RemoveTagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := resolveUser(ctx, h.sessions, h.users, cmd.SessionID())
	if err != nil {
		return err
	}

	s, err := user.FindShipment(cmd.TrackingNumber())
	if err != nil {
		return err
	}

	return s.RemoveTag(cmd.Tag())
}
