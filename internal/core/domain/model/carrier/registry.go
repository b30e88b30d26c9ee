package carrier

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrRegistryIsNotConstructed is returned when a Registry was not created via
// NewRegistry.
var ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry")

// Registry holds the closed set of known carriers keyed by their uppercase
// code. The set is populated once when the application is composed and is
// read-only afterwards, so lookups need no synchronization.
type Registry struct {
	carriers map[string]*Carrier

	guard guard.ConstructorGuard
}

// NewRegistry creates an empty carrier registry.
func NewRegistry() *Registry {
	return &Registry{
		carriers: make(map[string]*Carrier),
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the Registry was created via NewRegistry.
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}

// Register adds a carrier under its code. Registering a code twice fails:
// carriers, including their tracking patterns, are immutable once registered.
func (r *Registry) Register(c *Carrier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, exists := r.carriers[c.Code()]; exists {
		return errs.NewValueIsInvalidErrorWithCause("carrier",
			fmt.Errorf("%s is already registered", c.Code()))
	}
	r.carriers[c.Code()] = c
	return nil
}

// Lookup returns the carrier registered under the code. The code is
// normalized to upper case before the lookup. The second result is false when
// the code is unknown.
func (r *Registry) Lookup(code string) (*Carrier, bool) {
	c, ok := r.carriers[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ValidateTrackingNumber reports whether trackingNumber matches the pattern
// of the carrier registered under code. Returns ObjectNotFoundError for an
// unknown code.
func (r *Registry) ValidateTrackingNumber(code, trackingNumber string) (bool, error) {
	c, ok := r.Lookup(code)
	if !ok {
		return false, errs.NewObjectNotFoundError("carrier", code)
	}
	return c.ValidateTrackingNumber(trackingNumber), nil
}

// TrackingLink renders the tracking URL of the carrier registered under code.
// Returns ObjectNotFoundError for an unknown code and a validation error when
// the tracking number does not match the carrier's pattern.
func (r *Registry) TrackingLink(code, trackingNumber string) (string, error) {
	c, ok := r.Lookup(code)
	if !ok {
		return "", errs.NewObjectNotFoundError("carrier", code)
	}
	if !c.ValidateTrackingNumber(trackingNumber) {
		return "", errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%s does not match the %s pattern", trackingNumber, c.Name()))
	}
	return c.TrackingLink(trackingNumber), nil
}

// Codes returns the registered carrier codes in lexical order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.carriers))
	for code := range r.carriers {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
