package carrier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through one of the constructor functions.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier, NewInternationalCarrier or NewHazmatCarrier")

const (
	// trackingNumberPlaceholder is the single substitution slot a link
	// template must contain exactly once.
	trackingNumberPlaceholder = "{trackingNumber}"

	// maxCustomsHours bounds customs clearance estimates to ten days.
	maxCustomsHours = 240
)

// genericHandlingInstructions is returned for hazard classes without a
// dedicated instruction entry.
const genericHandlingInstructions = "Standard handling procedures apply"

// Carrier is a registered shipping provider. It validates tracking numbers
// against its pattern and renders tracking links from its template.
//
// The pattern is immutable after construction: there is no setter and the
// compiled regexp is never replaced. Capability variants are reached through
// International() and Hazmat() checks on the Kind.
type Carrier struct {
	// code is the uppercase registry token, e.g. "UPS".
	code string

	// name is the display name, e.g. "UPS" or "Chemical Logistics".
	name string

	// pattern matches this carrier's tracking numbers. When it defines a
	// capture group, the first group is the tracking number; otherwise the
	// whole match is.
	pattern *regexp.Regexp

	// linkTemplate is a URL containing exactly one tracking-number
	// placeholder.
	linkTemplate string

	kind          Kind
	international *InternationalCapability
	hazmat        *HazmatCapability

	guard guard.ConstructorGuard
}

// NewCarrier creates a Standard carrier.
// The pattern must be a valid regular expression and the link template must
// contain the {trackingNumber} placeholder exactly once.
func NewCarrier(code, name, pattern, linkTemplate string) (*Carrier, error) {
	return newCarrier(code, name, pattern, linkTemplate, Standard, nil, nil)
}

// NewInternationalCarrier creates an International carrier supporting the
// given destination countries. customsHours estimates clearance per country;
// defaultCustomsHours applies to countries absent from the table.
func NewInternationalCarrier(
	code, name, pattern, linkTemplate string,
	countries []string,
	customsHours map[string]int,
	defaultCustomsHours int,
) (*Carrier, error) {
	capability, err := newInternationalCapability(countries, customsHours, defaultCustomsHours)
	if err != nil {
		return nil, err
	}
	return newCarrier(code, name, pattern, linkTemplate, International, capability, nil)
}

// NewHazmatCarrier creates a Hazmat carrier allowing the given hazard
// classes. instructions maps a class to its handling instructions; classes
// without an entry fall back to a generic instruction.
func NewHazmatCarrier(
	code, name, pattern, linkTemplate string,
	classes []string,
	instructions map[string]string,
) (*Carrier, error) {
	capability, err := newHazmatCapability(classes, instructions)
	if err != nil {
		return nil, err
	}
	return newCarrier(code, name, pattern, linkTemplate, Hazmat, nil, capability)
}

func newCarrier(
	code, name, pattern, linkTemplate string,
	kind Kind,
	international *InternationalCapability,
	hazmat *HazmatCapability,
) (*Carrier, error) {
	c := &Carrier{
		kind:          kind,
		international: international,
		hazmat:        hazmat,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCode(code),
		c.setName(name),
		c.setPattern(pattern),
		c.setLinkTemplate(linkTemplate),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// Code returns the uppercase registry token of the carrier.
func (c *Carrier) Code() string {
	return c.code
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// Kind returns the carrier's capability variant.
func (c *Carrier) Kind() Kind {
	return c.kind
}

// ValidateTrackingNumber reports whether trackingNumber matches this
// carrier's pattern.
func (c *Carrier) ValidateTrackingNumber(trackingNumber string) bool {
	return c.pattern.MatchString(trackingNumber)
}

// MatchTrackingNumber applies the carrier's pattern against arbitrary text.
// When the pattern defines a capture group the first group is returned,
// otherwise the whole match. The second result is false when the text
// contains no tracking number for this carrier.
func (c *Carrier) MatchTrackingNumber(text string) (string, bool) {
	match := c.pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	if len(match) > 1 && match[1] != "" {
		return match[1], true
	}
	return match[0], true
}

// TrackingLink renders the carrier's tracking URL for a tracking number.
func (c *Carrier) TrackingLink(trackingNumber string) string {
	return strings.Replace(c.linkTemplate, trackingNumberPlaceholder, trackingNumber, 1)
}

// International returns the international capability when the carrier has
// one. The second result is false for other kinds.
func (c *Carrier) International() (*InternationalCapability, bool) {
	if c.kind != International {
		return nil, false
	}
	return c.international, true
}

// Hazmat returns the hazmat capability when the carrier has one.
// The second result is false for other kinds.
func (c *Carrier) Hazmat() (*HazmatCapability, bool) {
	if c.kind != Hazmat {
		return nil, false
	}
	return c.hazmat, true
}

func (c *Carrier) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carrier) setPattern(pattern string) error {
	if pattern == "" {
		return errs.NewValueIsRequiredError("pattern")
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pattern", err)
	}
	c.pattern = compiled
	return nil
}

func (c *Carrier) setLinkTemplate(linkTemplate string) error {
	if linkTemplate == "" {
		return errs.NewValueIsRequiredError("linkTemplate")
	}
	if strings.Count(linkTemplate, trackingNumberPlaceholder) != 1 {
		return errs.NewValueIsInvalidErrorWithCause("linkTemplate",
			fmt.Errorf("template must contain %s exactly once", trackingNumberPlaceholder))
	}
	c.linkTemplate = linkTemplate
	return nil
}

// InternationalCapability carries the destination countries and customs
// clearance estimates of an International carrier.
type InternationalCapability struct {
	countries           map[string]struct{}
	customsHours        map[string]int
	defaultCustomsHours int
}

func newInternationalCapability(
	countries []string,
	customsHours map[string]int,
	defaultCustomsHours int,
) (*InternationalCapability, error) {
	if len(countries) == 0 {
		return nil, errs.NewValueIsRequiredError("countries")
	}
	if defaultCustomsHours < 0 || defaultCustomsHours > maxCustomsHours {
		return nil, errs.NewValueIsOutOfRangeError("defaultCustomsHours", defaultCustomsHours, 0, maxCustomsHours)
	}

	supported := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		supported[strings.ToUpper(strings.TrimSpace(country))] = struct{}{}
	}

	hours := make(map[string]int, len(customsHours))
	for country, h := range customsHours {
		if h < 0 || h > maxCustomsHours {
			return nil, errs.NewValueIsOutOfRangeError("customsHours", h, 0, maxCustomsHours)
		}
		hours[strings.ToUpper(strings.TrimSpace(country))] = h
	}

	return &InternationalCapability{
		countries:           supported,
		customsHours:        hours,
		defaultCustomsHours: defaultCustomsHours,
	}, nil
}

// SupportsDestination reports whether the carrier ships to the country code.
// Comparison is case-insensitive.
func (c *InternationalCapability) SupportsDestination(country string) bool {
	_, ok := c.countries[strings.ToUpper(strings.TrimSpace(country))]
	return ok
}

// EstimatedCustomsHours returns the customs clearance estimate for the
// country, falling back to the carrier's default for unknown countries.
func (c *InternationalCapability) EstimatedCustomsHours(country string) int {
	if hours, ok := c.customsHours[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return hours
	}
	return c.defaultCustomsHours
}

// HazmatCapability carries the allowed hazard classes and handling
// instructions of a Hazmat carrier.
type HazmatCapability struct {
	classes      map[string]struct{}
	instructions map[string]string
}

func newHazmatCapability(classes []string, instructions map[string]string) (*HazmatCapability, error) {
	if len(classes) == 0 {
		return nil, errs.NewValueIsRequiredError("classes")
	}

	allowed := make(map[string]struct{}, len(classes))
	for _, class := range classes {
		allowed[strings.ToLower(strings.TrimSpace(class))] = struct{}{}
	}

	normalized := make(map[string]string, len(instructions))
	for class, instruction := range instructions {
		normalized[strings.ToLower(strings.TrimSpace(class))] = instruction
	}

	return &HazmatCapability{classes: allowed, instructions: normalized}, nil
}

// SupportsClass reports whether the hazard class is on the carrier's
// allow-list. Comparison is case-insensitive.
func (c *HazmatCapability) SupportsClass(class string) bool {
	_, ok := c.classes[strings.ToLower(strings.TrimSpace(class))]
	return ok
}

// HandlingInstructions returns the handling instructions for the hazard
// class, or a generic instruction when no dedicated entry exists.
func (c *HazmatCapability) HandlingInstructions(class string) string {
	if instruction, ok := c.instructions[strings.ToLower(strings.TrimSpace(class))]; ok {
		return instruction
	}
	return genericHandlingInstructions
}
