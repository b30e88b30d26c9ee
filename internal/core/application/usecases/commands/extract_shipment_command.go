package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrExtractShipmentCommandIsNotConstructed = errors.New(
		"ExtractShipmentCommand must be created via NewExtractShipmentCommand constructor",
	)
	ErrContentIsRequired = errors.New("message content is required")
)

// ExtractShipmentCommand represents a request to parse a notification
// message and register the shipment it describes under the caller's account.
type ExtractShipmentCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	content   string

	guard guard.ConstructorGuard
}

// NewExtractShipmentCommand creates an extraction command from a session
// identifier and the raw message text.
func NewExtractShipmentCommand(sessionID, content string) (ExtractShipmentCommand, error) {
	extractCommand := ExtractShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		extractCommand.setSessionID(sessionID),
		extractCommand.setContent(content),
	); err != nil {
		return ExtractShipmentCommand{}, err
	}

	return extractCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtractShipmentCommand) Validate() error {
	return c.guard.Validate(ErrExtractShipmentCommandIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (c ExtractShipmentCommand) SessionID() string {
	return c.sessionID
}

// Content returns the raw message text to parse.
func (c ExtractShipmentCommand) Content() string {
	return c.content
}

func (c *ExtractShipmentCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *ExtractShipmentCommand) setContent(content string) error {
	if content == "" {
		return ErrContentIsRequired
	}

	c.content = content
	return nil
}
