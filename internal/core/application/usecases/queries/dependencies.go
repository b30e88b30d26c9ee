// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries resolve the caller's session, walk the owned shipment collection,
// and return read models detached from the aggregates.
package queries

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/account"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

var ErrQuerySessionIDIsRequired = errors.New("session id is required")

// resolveUser maps a session identifier to the owning user aggregate.
// An unknown session becomes ports.ErrAuthenticationRequired.
func resolveUser(
	ctx context.Context,
	sessions ports.SessionStore,
	users ports.UserRepository,
	sessionID string,
) (*account.User, error) {
	username, err := sessions.GetUsername(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrAuthenticationRequired
		}
		return nil, err
	}

	return users.GetByUsername(ctx, username)
}
