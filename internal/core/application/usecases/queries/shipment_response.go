package queries

import (
	"time"

	"parceltrack/internal/core/domain/model/shipment"
)

// ShipmentResponse is the read model for a tracked shipment.
// All fields are plain values detached from the aggregate, so responses
// stay stable even if the shipment is mutated after the query returns.
type ShipmentResponse struct {
	TrackingNumber     string
	CarrierCode        string
	CarrierName        string
	Sender             string
	Description        string
	EstimatedDelivery  time.Time
	OriginCountry      string
	DestinationCountry string
	Status             string
	TrackingLink       string
	Tags               []string
	History            []StatusEventResponse
}

// StatusEventResponse is one entry of a shipment's status history.
type StatusEventResponse struct {
	Status    string
	Timestamp time.Time
}

// NewShipmentResponse builds the read model from a shipment aggregate.
func NewShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	history := s.History()
	events := make([]StatusEventResponse, 0, len(history))
	for _, e := range history {
		events = append(events, StatusEventResponse{
			Status:    e.Status().String(),
			Timestamp: e.Timestamp(),
		})
	}

	return ShipmentResponse{
		TrackingNumber:     s.TrackingNumber(),
		CarrierCode:        s.Carrier().Code(),
		CarrierName:        s.Carrier().Name(),
		Sender:             s.Sender(),
		Description:        s.Description(),
		EstimatedDelivery:  s.EstimatedDelivery(),
		OriginCountry:      s.OriginCountry(),
		DestinationCountry: s.DestinationCountry(),
		Status:             s.Status().String(),
		TrackingLink:       s.TrackingLink(),
		Tags:               s.Tags(),
		History:            events,
	}
}
