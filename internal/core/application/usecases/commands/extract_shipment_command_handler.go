package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/events"
	"parceltrack/internal/core/ports"
)

// ExtractShipmentCommandHandler parses a notification message, creates the
// shipment aggregate, and attaches it to the caller's account.
// On success a ShipmentCreated event is published; if the shipment is due
// tomorrow a DeliveryTomorrow event follows it.
//
// Example:
//
//	handler := NewExtractShipmentCommandHandler(users, sessions, extractor, publisher)
//	cmd, _ := NewExtractShipmentCommand(sessionID, messageBody)
//
//	s, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoShipmentDetected) {
//	    // message carried no recognizable shipment, not a system failure
//	}
type ExtractShipmentCommandHandler struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	extractor services.MessageExtractor
	publisher ports.EventPublisher
}

// NewExtractShipmentCommandHandler creates a handler for shipment extraction.
func NewExtractShipmentCommandHandler(
	users ports.UserRepository,
	sessions ports.SessionStore,
	extractor services.MessageExtractor,
	publisher ports.EventPublisher,
) ExtractShipmentCommandHandler {
	return ExtractShipmentCommandHandler{
		users:     users,
		sessions:  sessions,
		extractor: extractor,
		publisher: publisher,
	}
}

// Handle parses the message and registers the resulting shipment.
// Returns the created shipment so callers can render it immediately.
func (h *ExtractShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ExtractShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, h.sessions, h.users, cmd.SessionID())
	if err != nil {
		return nil, err
	}

	draft, err := h.extractor.Extract(cmd.Content())
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		draft.TrackingNumber,
		draft.Carrier,
		draft.Sender,
		draft.Description,
		draft.EstimatedDelivery,
		draft.OriginCountry,
		draft.DestinationCountry,
	)
	if err != nil {
		return nil, err
	}

	if err := user.AddShipment(s); err != nil {
		return nil, err
	}

	h.publisher.Publish(events.NewShipmentCreated(s))

	tomorrow := time.Now().AddDate(0, 0, 1)
	if s.DeliveryExpectedOn(tomorrow) {
		h.publisher.Publish(events.NewDeliveryTomorrow(s))
	}

	return s, nil
}
