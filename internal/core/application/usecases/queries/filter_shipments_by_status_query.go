package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/guard"
)

var ErrFilterShipmentsByStatusQueryIsNotConstructed = errors.New(
	"FilterShipmentsByStatusQuery must be created via NewFilterShipmentsByStatusQuery constructor",
)

// FilterShipmentsByStatusQuery retrieves the caller's shipments currently
// in a single status.
type FilterShipmentsByStatusQuery struct { //nolint:recvcheck //using for validation
	sessionID string
	status    shipment.Status

	guard guard.ConstructorGuard
}

// NewFilterShipmentsByStatusQuery creates a status filter query.
// The status must be a member of the status enumeration.
func NewFilterShipmentsByStatusQuery(sessionID string, status shipment.Status) (FilterShipmentsByStatusQuery, error) {
	query := FilterShipmentsByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSessionID(sessionID),
		query.setStatus(status),
	); err != nil {
		return FilterShipmentsByStatusQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FilterShipmentsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrFilterShipmentsByStatusQueryIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (q FilterShipmentsByStatusQuery) SessionID() string {
	return q.sessionID
}

// Status returns the status to filter on.
func (q FilterShipmentsByStatusQuery) Status() shipment.Status {
	return q.status
}

func (q *FilterShipmentsByStatusQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrQuerySessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}

func (q *FilterShipmentsByStatusQuery) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.status = status
	return nil
}
