package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves the caller's tracked shipments ordered by
// estimated delivery date, soonest first.
//
// Example:
//
//	query, _ := NewGetShipmentsQuery(sessionID)
//	handler := NewGetShipmentsQueryHandler(users, sessions)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//
//	for _, s := range shipments {
//	    fmt.Printf("%s arrives %s\n", s.TrackingNumber, s.EstimatedDelivery.Format("2006-01-02"))
//	}
type GetShipmentsQuery struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a listing query for the given session.
func NewGetShipmentsQuery(sessionID string) (GetShipmentsQuery, error) {
	query := GetShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetShipmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (q GetShipmentsQuery) SessionID() string {
	return q.sessionID
}

func (q *GetShipmentsQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrQuerySessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}
