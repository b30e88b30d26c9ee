package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrSearchShipmentsQueryIsNotConstructed = errors.New(
		"SearchShipmentsQuery must be created via NewSearchShipmentsQuery constructor",
	)
	ErrSearchTermIsRequired = errors.New("search term is required")
)

// SearchShipmentsQuery retrieves the caller's shipments whose tracking
// number, sender, carrier name, or tags contain the search term.
type SearchShipmentsQuery struct { //nolint:recvcheck //using for validation
	sessionID string
	term      string

	guard guard.ConstructorGuard
}

// NewSearchShipmentsQuery creates a free-text search query.
func NewSearchShipmentsQuery(sessionID, term string) (SearchShipmentsQuery, error) {
	query := SearchShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSessionID(sessionID),
		query.setTerm(term),
	); err != nil {
		return SearchShipmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrSearchShipmentsQueryIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (q SearchShipmentsQuery) SessionID() string {
	return q.sessionID
}

// Term returns the search term.
func (q SearchShipmentsQuery) Term() string {
	return q.term
}

func (q *SearchShipmentsQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrQuerySessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}

func (q *SearchShipmentsQuery) setTerm(term string) error {
	if term == "" {
		return ErrSearchTermIsRequired
	}

	q.term = term
	return nil
}
