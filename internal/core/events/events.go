// Package events defines the notification events the application emits and
// the payloads they carry. Events are delivered synchronously to subscribers
// in registration order through the event bus adapter.
package events

import "parceltrack/internal/core/domain/model/shipment"

// Name identifies an event type on the bus.
type Name string

const (
	// ShipmentCreated is emitted after a shipment was extracted and
	// attached to its owner. The payload is the created *shipment.Shipment.
	ShipmentCreated Name = "NEW_PACKAGE"

	// StatusUpdated is emitted after a successful status transition.
	// The payload is a StatusUpdatedPayload.
	StatusUpdated Name = "STATUS_UPDATE"

	// DeliveryTomorrow is emitted when a shipment's estimated delivery
	// date is tomorrow. The payload is the *shipment.Shipment concerned.
	DeliveryTomorrow Name = "DELIVERY_TOMORROW"
)

// Event is one notification on the bus.
type Event struct {
	Name    Name
	Payload any
}

// StatusUpdatedPayload carries the outcome of a status transition.
type StatusUpdatedPayload struct {
	TrackingNumber string
	Status         shipment.Status
}

// NewShipmentCreated builds a ShipmentCreated event.
func NewShipmentCreated(s *shipment.Shipment) Event {
	return Event{Name: ShipmentCreated, Payload: s}
}

// NewStatusUpdated builds a StatusUpdated event.
func NewStatusUpdated(trackingNumber string, status shipment.Status) Event {
	return Event{Name: StatusUpdated, Payload: StatusUpdatedPayload{
		TrackingNumber: trackingNumber,
		Status:         status,
	}}
}

// NewDeliveryTomorrow builds a DeliveryTomorrow event.
func NewDeliveryTomorrow(s *shipment.Shipment) Event {
	return Event{Name: DeliveryTomorrow, Payload: s}
}
