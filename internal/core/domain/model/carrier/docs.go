// Package carrier models shipping providers and their capabilities.
//
// A Carrier binds a registry code, a display name, a tracking-number pattern
// and a tracking-link template. Carriers come in a closed set of capability
// variants (Standard, International, Hazmat) expressed as a tagged Kind plus
// an optional capability object, reached through a capability check rather
// than subclassing: the variant set is small, closed and stable.
//
// The Registry holds the known carriers keyed by their uppercase code. The
// carrier set is fixed when the application is composed; a carrier's tracking
// pattern never changes after registration.
package carrier
