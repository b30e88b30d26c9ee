package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrLogoutCommandIsNotConstructed = errors.New(
		"LogoutCommand must be created via NewLogoutCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
)

// LogoutCommand represents a request to close a session.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a logout command for the given session identifier.
func NewLogoutCommand(sessionID string) (LogoutCommand, error) {
	logoutCommand := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := logoutCommand.setSessionID(sessionID); err != nil {
		return LogoutCommand{}, err
	}

	return logoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// SessionID returns the session to close.
func (c LogoutCommand) SessionID() string {
	return c.sessionID
}

func (c *LogoutCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
