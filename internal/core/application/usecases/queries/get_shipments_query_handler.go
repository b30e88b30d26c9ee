package queries

import (
	"context"
	"sort"

	"parceltrack/internal/core/ports"
)

// GetShipmentsQueryHandler lists the caller's shipments sorted by estimated
// delivery date ascending. Shipments sharing a date keep their insertion
// order, so repeated queries return a stable ordering.
type GetShipmentsQueryHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewGetShipmentsQueryHandler creates a handler for shipment listing.
func NewGetShipmentsQueryHandler(users ports.UserRepository, sessions ports.SessionStore) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle returns the caller's shipments as read models, soonest delivery first.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, h.sessions, h.users, query.SessionID())
	if err != nil {
		return nil, err
	}

	shipments := user.Shipments()
	sort.SliceStable(shipments, func(i, j int) bool {
		return shipments[i].EstimatedDelivery().Before(shipments[j].EstimatedDelivery())
	})

	responses := make([]ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		responses = append(responses, NewShipmentResponse(s))
	}

	return responses, nil
}
