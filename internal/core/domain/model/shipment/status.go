package shipment

import (
	"fmt"
	"strings"

	"parceltrack/internal/pkg/errs"
)

// Status is the delivery state of a shipment.
//
// The set is closed but deliberately not an ordered pipeline: any status may
// transition to any other member of the set. UpdateStatus on the aggregate
// checks membership only.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InTransit is the initial status of every new shipment.
	InTransit

	// OutForDelivery indicates the parcel is on the last-mile vehicle.
	OutForDelivery

	// ArrivingSoon indicates delivery is expected shortly.
	ArrivingSoon

	// Delayed indicates the carrier reported a delay.
	Delayed

	// Exception indicates a problem requiring attention (customs hold,
	// damaged parcel, failed delivery attempt).
	Exception

	// Delivered indicates the parcel reached its destination.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		InTransit:      "In Transit",
		OutForDelivery: "Out for Delivery",
		ArrivingSoon:   "Arriving Soon",
		Delayed:        "Delayed",
		Exception:      "Exception",
		Delivered:      "Delivered",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InTransit:      "In Transit",
		OutForDelivery: "Out for Delivery",
		ArrivingSoon:   "Arriving Soon",
		Delayed:        "Delayed",
		Exception:      "Exception",
		Delivered:      "Delivered",
	}
}

// Validate returns an error unless the status is a member of the enumerated
// set. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status, or "Unknown" for invalid
// values. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus resolves a display name back to its Status. Matching is
// case-insensitive. Returns a validation error for names outside the
// enumerated set.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for status, str := range validStatusStrings() {
		if strings.ToLower(str) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", name))
}
