package queries

import (
	"context"

	"parceltrack/internal/core/ports"
)

// SearchShipmentsQueryHandler runs a case-insensitive substring search over
// the caller's shipments. Matching is delegated to the aggregate, so the
// searchable fields stay defined in one place.
type SearchShipmentsQueryHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewSearchShipmentsQueryHandler creates a handler for shipment search.
func NewSearchShipmentsQueryHandler(
	users ports.UserRepository,
	sessions ports.SessionStore,
) SearchShipmentsQueryHandler {
	return SearchShipmentsQueryHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle returns the matching shipments as read models, in insertion order.
func (h SearchShipmentsQueryHandler) Handle(
	ctx context.Context,
	query SearchShipmentsQuery,
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
		if s.Matches(query.Term()) {
			responses = append(responses, NewShipmentResponse(s))
		}
	}

	return responses, nil
}
