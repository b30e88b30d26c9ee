package carrier

import (
	"fmt"

	"parceltrack/internal/pkg/errs"
)

// Kind is the capability variant of a carrier. The set is closed: new
// capabilities are added here, never by open-ended subtyping.
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Standard carriers validate tracking numbers and generate tracking
	// links, nothing more.
	Standard

	// International carriers additionally know their supported destination
	// countries and per-country customs clearance estimates.
	International

	// Hazmat carriers additionally carry an allow-list of hazard classes
	// and per-class handling instructions.
	Hazmat
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:       "Unknown",
		Standard:      "Standard",
		International: "International",
		Hazmat:        "Hazmat",
	}
}

// Validate returns an error unless the kind is one of the defined variants.
func (k Kind) Validate() error {
	switch k {
	case Standard, International, Hazmat:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid carrier kind", k))
	}
}

// String returns the human-readable name of the kind, or "Unknown" for
// undefined values.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}
