package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// UpdateShipmentStatusCommand represents a request to move one of the
// caller's shipments to a new status.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	sessionID      string
	trackingNumber string
	status         shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a status-update command.
// The target status must be a member of the status enumeration.
func NewUpdateShipmentStatusCommand(
	sessionID, trackingNumber string,
	status shipment.Status,
) (UpdateShipmentStatusCommand, error) {
	updateCommand := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setSessionID(sessionID),
		updateCommand.setTrackingNumber(trackingNumber),
		updateCommand.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// SessionID returns the caller's session identifier.
func (c UpdateShipmentStatusCommand) SessionID() string {
	return c.sessionID
}

// TrackingNumber identifies the shipment within the caller's collection.
func (c UpdateShipmentStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Status returns the target status.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateShipmentStatusCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
