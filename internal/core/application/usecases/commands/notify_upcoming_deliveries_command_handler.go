package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/events"
	"parceltrack/internal/core/ports"
)

// NotifyUpcomingDeliveriesCommandHandler publishes a DeliveryTomorrow event
// for every undelivered shipment whose estimated delivery falls on the next
// calendar day.
type NotifyUpcomingDeliveriesCommandHandler struct {
	users     ports.UserRepository
	publisher ports.EventPublisher
}

// NewNotifyUpcomingDeliveriesCommandHandler creates a handler for reminder sweeps.
func NewNotifyUpcomingDeliveriesCommandHandler(
	users ports.UserRepository,
	publisher ports.EventPublisher,
) NotifyUpcomingDeliveriesCommandHandler {
	return NotifyUpcomingDeliveriesCommandHandler{
		users:     users,
		publisher: publisher,
	}
}

// Handle walks all users' shipments and publishes reminders for tomorrow.
func (h *NotifyUpcomingDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd NotifyUpcomingDeliveriesCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	users, err := h.users.All(ctx)
	if err != nil {
		return err
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	for _, user := range users {
		for _, s := range user.Shipments() {
			if s.Status() == shipment.Delivered {
				continue
			}
			if s.DeliveryExpectedOn(tomorrow) {
				h.publisher.Publish(events.NewDeliveryTomorrow(s))
			}
		}
	}

	return nil
}
