package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

// NotifyUpcomingDeliveriesCommand triggers a sweep over every registered
// shipment and publishes a reminder for each one expected tomorrow.
//
// Example:
//
//	cmd := NewNotifyUpcomingDeliveriesCommand()
//	handler := NewNotifyUpcomingDeliveriesCommandHandler(users, publisher)
//
//	// Run on a schedule, once per day
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Reminder sweep failed: %v", err)
//	}
type NotifyUpcomingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrNotifyUpcomingDeliveriesCommandIsNotConstructed = errors.New(
		"NotifyUpcomingDeliveriesCommand must be created via NewNotifyUpcomingDeliveriesCommand constructor",
	)
)

// NewNotifyUpcomingDeliveriesCommand creates a parameterless reminder command
// that covers all users.
func NewNotifyUpcomingDeliveriesCommand() NotifyUpcomingDeliveriesCommand {
	command := NotifyUpcomingDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *NotifyUpcomingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrNotifyUpcomingDeliveriesCommandIsNotConstructed)
}
