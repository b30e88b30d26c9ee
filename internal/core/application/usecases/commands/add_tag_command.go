package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrAddTagCommandIsNotConstructed = errors.New(
		"AddTagCommand must be created via NewAddTagCommand constructor",
	)
	ErrTagIsRequired = errors.New("tag is required")
)

// AddTagCommand represents a request to attach a tag to a shipment.
type AddTagCommand struct { //nolint:recvcheck //using for validation
	sessionID      string
	trackingNumber string
	tag            string

	guard guard.ConstructorGuard
}

// NewAddTagCommand creates a tag attachment command. The tag is passed
// through as written; lowercase normalization happens in the aggregate.
func NewAddTagCommand(sessionID, trackingNumber, tag string) (AddTagCommand, error) {
	tagCommand := AddTagCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tagCommand.setSessionID(sessionID),
		tagCommand.setTrackingNumber(trackingNumber),
		tagCommand.setTag(tag),
	); err != nil {
		return AddTagCommand{}, err
	}

	return tagCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddTagCommand) Validate() error {
	return c.guard.Validate(ErrAddTagCommandIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (c AddTagCommand) SessionID() string {
	return c.sessionID
}

// TrackingNumber identifies the shipment within the caller's collection.
func (c AddTagCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Tag returns the tag text as submitted.
func (c AddTagCommand) Tag() string {
	return c.tag
}

func (c *AddTagCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddTagCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *AddTagCommand) setTag(tag string) error {
	if tag == "" {
		return ErrTagIsRequired
	}

	c.tag = tag
	return nil
}
