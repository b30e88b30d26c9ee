package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// AddTagCommandHandler attaches a tag to one of the caller's shipments.
type AddTagCommandHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewAddTagCommandHandler creates a handler for tag attachment.
func NewAddTagCommandHandler(users ports.UserRepository, sessions ports.SessionStore) AddTagCommandHandler {
	return AddTagCommandHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle finds the shipment in the caller's collection and tags it.
// Adding a tag that is already present is a no-op.
func (h *AddTagCommandHandler) Handle(ctx context.Context, cmd AddTagCommand) error {
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

	return s.AddTag(cmd.Tag())
}
