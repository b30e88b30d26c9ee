package http

import (
	"time"

	"parceltrack/internal/core/application/usecases/queries"
)

// Request bodies accepted by the API.
type (
	RegisterUserRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	ExtractShipmentRequest struct {
		Message string `json:"message"`
	}

	UpdateStatusRequest struct {
		Status string `json:"status"`
	}

	AddTagRequest struct {
		Tag string `json:"tag"`
	}
)

// Response bodies produced by the API.
type (
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	LoginResponse struct {
		SessionID string `json:"sessionId"`
	}

	StatusEvent struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}

	Shipment struct {
		TrackingNumber     string        `json:"trackingNumber"`
		CarrierCode        string        `json:"carrierCode"`
		CarrierName        string        `json:"carrierName"`
		Sender             string        `json:"sender"`
		Description        string        `json:"description"`
		EstimatedDelivery  time.Time     `json:"estimatedDelivery"`
		OriginCountry      string        `json:"originCountry"`
		DestinationCountry string        `json:"destinationCountry"`
		Status             string        `json:"status"`
		TrackingLink       string        `json:"trackingLink"`
		Tags               []string      `json:"tags"`
		History            []StatusEvent `json:"history"`
	}
)

func toShipment(r queries.ShipmentResponse) Shipment {
	history := make([]StatusEvent, 0, len(r.History))
	for _, e := range r.History {
		history = append(history, StatusEvent{Status: e.Status, Timestamp: e.Timestamp})
	}

	return Shipment{
		TrackingNumber:     r.TrackingNumber,
		CarrierCode:        r.CarrierCode,
		CarrierName:        r.CarrierName,
		Sender:             r.Sender,
		Description:        r.Description,
		EstimatedDelivery:  r.EstimatedDelivery,
		OriginCountry:      r.OriginCountry,
		DestinationCountry: r.DestinationCountry,
		Status:             r.Status,
		TrackingLink:       r.TrackingLink,
		Tags:               r.Tags,
		History:            history,
	}
}

func toShipments(rs []queries.ShipmentResponse) []Shipment {
	shipments := make([]Shipment, 0, len(rs))
	for _, r := range rs {
		shipments = append(shipments, toShipment(r))
	}
	return shipments
}
