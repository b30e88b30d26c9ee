package shipment

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment constructor.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the tracked-parcel aggregate.
//
// Invariants:
//   - The tracking number validates against the bound carrier's pattern.
//   - The status is always a member of the enumerated set.
//   - History entries are append-only with non-decreasing timestamps.
//   - Tags are unique under case-insensitive comparison.
//   - The tracking link is computed once at construction and never changes.
//
// Mutating methods (UpdateStatus, AddTag, RemoveTag) serialize through an
// internal mutex so concurrent callers cannot corrupt the history ordering or
// the tag set. Accessors return copies of mutable state.
type Shipment struct {
	trackingNumber string
	carrier        *carrier.Carrier
	sender         string
	description    string

	status             Status
	estimatedDelivery  time.Time
	originCountry      string
	destinationCountry string

	// tags holds lowercase values in insertion order.
	tags []string

	trackingLink string
	history      History

	mu    sync.Mutex
	guard guard.ConstructorGuard
}

// NewShipment creates a shipment bound to the given carrier with the initial
// InTransit status. The tracking number must match the carrier's pattern.
func NewShipment(
	trackingNumber string,
	c *carrier.Carrier,
	sender string,
	description string,
	estimatedDelivery time.Time,
	originCountry string,
	destinationCountry string,
) (*Shipment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &Shipment{
		carrier: c,
		status:  InTransit,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setTrackingNumber(trackingNumber),
		s.setSender(sender),
		s.setDescription(description),
		s.setEstimatedDelivery(estimatedDelivery),
		s.setOriginCountry(originCountry),
		s.setDestinationCountry(destinationCountry),
	); err != nil {
		return nil, err
	}

	s.trackingLink = c.TrackingLink(s.trackingNumber)
	return s, nil
}

// Validate ensures the Shipment was created via NewShipment.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// TrackingNumber returns the carrier-validated tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Carrier returns the carrier the shipment is bound to.
func (s *Shipment) Carrier() *carrier.Carrier {
	return s.carrier
}

// Sender returns the sender display string.
func (s *Shipment) Sender() string {
	return s.sender
}

// Description returns the parcel description.
func (s *Shipment) Description() string {
	return s.description
}

// EstimatedDelivery returns the expected delivery date.
func (s *Shipment) EstimatedDelivery() time.Time {
	return s.estimatedDelivery
}

// OriginCountry returns the origin country code.
func (s *Shipment) OriginCountry() string {
	return s.originCountry
}

// DestinationCountry returns the destination country code.
func (s *Shipment) DestinationCountry() string {
	return s.destinationCountry
}

// TrackingLink returns the carrier tracking URL computed at construction.
func (s *Shipment) TrackingLink() string {
	return s.trackingLink
}

// Status returns the current delivery status.
func (s *Shipment) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// History returns a copy of the status events recorded so far.
func (s *Shipment) History() []StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Tags returns a copy of the tag set in insertion order.
func (s *Shipment) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := make([]string, len(s.tags))
	copy(tags, s.tags)
	return tags
}

// UpdateStatus sets a new status and appends exactly one StatusEvent to the
// history. Fails with a validation error when newStatus is not a member of
// the enumerated set; the shipment is left untouched in that case.
func (s *Shipment) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = newStatus
	s.history.append(newStatusEvent(newStatus, time.Now()))
	return nil
}

// AddTag adds a tag under case-insensitive uniqueness. Adding an existing tag
// is a no-op. The stored value is lowercase.
func (s *Shipment) AddTag(tag string) error {
	normalized, err := normalizeTag(tag)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.tags {
		if existing == normalized {
			return nil
		}
	}
	s.tags = append(s.tags, normalized)
	return nil
}

// RemoveTag removes a tag under case-insensitive comparison. Removing an
// absent tag is a no-op.
func (s *Shipment) RemoveTag(tag string) error {
	normalized, err := normalizeTag(tag)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tags {
		if existing == normalized {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return nil
		}
	}
	return nil
}

// Matches reports whether the shipment matches a free-text query: a
// case-insensitive substring test over tracking number, sender, carrier name
// and tags, combined with OR.
func (s *Shipment) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	if strings.Contains(strings.ToLower(s.trackingNumber), q) ||
		strings.Contains(strings.ToLower(s.sender), q) ||
		strings.Contains(strings.ToLower(s.carrier.Name()), q) {
		return true
	}

	for _, tag := range s.Tags() {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// DeliveryExpectedOn reports whether the estimated delivery falls on the same
// calendar date as day.
func (s *Shipment) DeliveryExpectedOn(day time.Time) bool {
	y1, m1, d1 := s.estimatedDelivery.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if !s.carrier.ValidateTrackingNumber(trackingNumber) {
		return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%s does not match the %s pattern", trackingNumber, s.carrier.Name()))
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	s.sender = sender
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	s.description = description
	return nil
}

func (s *Shipment) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	s.estimatedDelivery = estimatedDelivery
	return nil
}

func (s *Shipment) setOriginCountry(originCountry string) error {
	if originCountry == "" {
		return errs.NewValueIsRequiredError("originCountry")
	}
	s.originCountry = strings.ToUpper(originCountry)
	return nil
}

func (s *Shipment) setDestinationCountry(destinationCountry string) error {
	if destinationCountry == "" {
		return errs.NewValueIsRequiredError("destinationCountry")
	}
	s.destinationCountry = strings.ToUpper(destinationCountry)
	return nil
}

func normalizeTag(tag string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("tag")
	}
	return normalized, nil
}
