package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"parceltrack/internal/core/domain/model/carrier"
)

// ErrNoShipmentDetected is returned when a message does not yield a shipment
// draft: a required label is absent, the declared carrier is unknown, or no
// tracking number matches. The failure is soft and local to the message;
// callers may resubmit corrected text.
var ErrNoShipmentDetected = errors.New("no shipment details detected in message")

const (
	defaultSender      = "Unknown Sender"
	defaultDescription = "Package"
	defaultCountry     = "US"

	deliveryDateLayout = "2006-01-02"
)

// Label grammar of shipment-notification messages. Labels are
// order-independent; the tracking number may occur anywhere in the text.
var (
	carrierLabelPattern       = regexp.MustCompile(`Carrier: (\w+)`)
	senderLabelPattern        = regexp.MustCompile(`From: (.+)`)
	descriptionLabelPattern   = regexp.MustCompile(`order of "([^"]+)"`)
	deliveryDateLabelPattern  = regexp.MustCompile(`Expected Delivery: (\d{4}-\d{2}-\d{2})`)
	originCountryPattern      = regexp.MustCompile(`Origin Country: (\w+)`)
	destinationCountryPattern = regexp.MustCompile(`Destination Country: (\w+)`)
)

// ShipmentDraft is the structured result of extracting a message. It binds
// the resolved carrier instance, not merely its code, so capability calls
// need no second registry lookup.
type ShipmentDraft struct {
	Carrier            *carrier.Carrier
	TrackingNumber     string
	Sender             string
	Description        string
	EstimatedDelivery  time.Time
	OriginCountry      string
	DestinationCountry string
}

// MessageExtractor turns raw shipment-notification text into a ShipmentDraft
// bound to a specific carrier. It is stateless; Extract is a pure function of
// its input and the registry contents.
type MessageExtractor struct {
	registry *carrier.Registry
}

// NewMessageExtractor creates an extractor over the given carrier registry.
func NewMessageExtractor(registry *carrier.Registry) (MessageExtractor, error) {
	if err := registry.Validate(); err != nil {
		return MessageExtractor{}, err
	}
	return MessageExtractor{registry: registry}, nil
}

// Extract parses message content into a draft. Any failure short-circuits to
// ErrNoShipmentDetected with the reason attached.
//
// The carrier must be declared through a "Carrier:" label; a declared but
// unknown carrier fails without falling back to scanning other carriers'
// patterns, so a message is never silently attributed to the wrong provider.
// Sender, description, delivery date and countries have defaults when their
// labels are absent.
func (e MessageExtractor) Extract(content string) (*ShipmentDraft, error) {
	carrierMatch := carrierLabelPattern.FindStringSubmatch(content)
	if carrierMatch == nil {
		return nil, fmt.Errorf("%w: carrier label missing", ErrNoShipmentDetected)
	}

	declared, ok := e.registry.Lookup(carrierMatch[1])
	if !ok {
		return nil, fmt.Errorf("%w: unknown carrier %q", ErrNoShipmentDetected, carrierMatch[1])
	}

	trackingNumber, ok := declared.MatchTrackingNumber(content)
	if !ok {
		return nil, fmt.Errorf("%w: no %s tracking number found", ErrNoShipmentDetected, declared.Name())
	}

	estimatedDelivery, err := e.extractDeliveryDate(content)
	if err != nil {
		return nil, err
	}

	return &ShipmentDraft{
		Carrier:            declared,
		TrackingNumber:     trackingNumber,
		Sender:             extractLabel(senderLabelPattern, content, defaultSender),
		Description:        extractLabel(descriptionLabelPattern, content, defaultDescription),
		EstimatedDelivery:  estimatedDelivery,
		OriginCountry:      extractLabel(originCountryPattern, content, defaultCountry),
		DestinationCountry: extractLabel(destinationCountryPattern, content, defaultCountry),
	}, nil
}

// extractDeliveryDate parses the "Expected Delivery:" label, defaulting to
// 24 hours from now when absent. A label matching the shape but naming an
// impossible calendar date fails the whole extraction instead of being
// silently defaulted.
func (e MessageExtractor) extractDeliveryDate(content string) (time.Time, error) {
	match := deliveryDateLabelPattern.FindStringSubmatch(content)
	if match == nil {
		return time.Now().Add(24 * time.Hour), nil
	}

	date, err := time.Parse(deliveryDateLayout, match[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid delivery date %q", ErrNoShipmentDetected, match[1])
	}
	return date, nil
}

func extractLabel(pattern *regexp.Regexp, content, fallback string) string {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return fallback
	}
	value := strings.TrimSpace(match[1])
	if value == "" {
		return fallback
	}
	return value
}
