package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrRemoveTagCommandIsNotConstructed = errors.New(
	"RemoveTagCommand must be created via NewRemoveTagCommand constructor",
)

// RemoveTagCommand represents a request to detach a tag from a shipment.
type RemoveTagCommand struct { //nolint:recvcheck //using for validation
	sessionID      string
	trackingNumber string
	tag            string

	guard guard.ConstructorGuard
}

// NewRemoveTagCommand creates a tag removal command.
func NewRemoveTagCommand(sessionID, trackingNumber, tag string) (RemoveTagCommand, error) {
	tagCommand := RemoveTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tagCommand.setSessionID(sessionID),
		tagCommand.setTrackingNumber(trackingNumber),
		tagCommand.setTag(tag),
	); err != nil {
		return RemoveTagCommand{}, err
	}

	return tagCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTagCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTagCommandIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (c RemoveTagCommand) SessionID() string {
	return c.sessionID
}

// TrackingNumber identifies the shipment within the caller's collection.
func (c RemoveTagCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Tag returns the tag text as submitted.
func (c RemoveTagCommand) Tag() string {
	return c.tag
}

func (c *RemoveTagCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *RemoveTagCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *RemoveTagCommand) setTag(tag string) error {
	if tag == "" {
		return ErrTagIsRequired
	}

	c.tag = tag
	return nil
}
