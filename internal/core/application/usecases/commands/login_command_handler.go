package commands

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/ports"
	"parceltrack/internal/pkg/errs"
)

// LoginCommandHandler verifies credentials and opens a session.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials
// so the response does not leak which part was wrong.
//
// Example:
//
//	handler := NewLoginCommandHandler(users, sessions)
//	cmd, _ := NewLoginCommand("alice", "s3cret")
//
//	sessionID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("login failed: %w", err)
//	}
//	// sessionID authenticates subsequent requests
type LoginCommandHandler struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(users ports.UserRepository, sessions ports.SessionStore) LoginCommandHandler {
	return LoginCommandHandler{
		users:    users,
		sessions: sessions,
	}
}

// Handle verifies the credentials and returns a fresh session identifier.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	user, err := h.users.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.VerifyPassword(cmd.Password()) {
		return "", ErrInvalidCredentials
	}

	sessionID := kernel.NewUUID().String()
	if err := h.sessions.Add(ctx, sessionID, user.Username()); err != nil {
		return "", err
	}

	return sessionID, nil
}
