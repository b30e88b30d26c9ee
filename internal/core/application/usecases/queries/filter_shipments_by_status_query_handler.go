package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// FilterShipmentsByStatusQueryHandler returns the caller's shipments that
// are currently in the requested status, in insertion order.
type FilterShipmentsByStatusQueryHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewFilterShipmentsByStatusQueryHandler creates a handler for status filtering.
func NewFilterShipmentsByStatusQueryHandler(
	users ports.UserRepository,
	sessions ports.SessionStore,
) FilterShipmentsByStatusQueryHandler {
	return FilterShipmentsByStatusQueryHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle returns the matching shipments as read models.
func (h FilterShipmentsByStatusQueryHandler) Handle(
	ctx context.Context,
	query FilterShipmentsByStatusQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, h.sessions, h.users, query.SessionID())
	if err != nil {
		return nil, err
	}

	responses := make([]ShipmentResponse, 0)
	for _, s := range user.Shipments() {
		if s.Status() == query.Status() {
			responses = append(responses, NewShipmentResponse(s))
		}
	}

	return responses, nil
}
