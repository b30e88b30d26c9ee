package commands

import (
	"context"

	"parceltrack/internal/core/events"
	"parceltrack/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler moves a shipment in the caller's
// collection to a new status and publishes a StatusUpdated event.
// Shipments belonging to other users are unreachable; lookup only ever
// searches the authenticated user's own collection.
type UpdateShipmentStatusCommandHandler struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	publisher ports.EventPublisher
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status updates.
func NewUpdateShipmentStatusCommandHandler(
	users ports.UserRepository,
	sessions ports.SessionStore,
	publisher ports.EventPublisher,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		users:     users,
		sessions:  sessions,
		publisher: publisher,
	}
}

// Handle applies the status change and records it in the shipment history.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err := s.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	h.publisher.Publish(events.NewStatusUpdated(s.TrackingNumber(), cmd.Status()))
	return nil
}
