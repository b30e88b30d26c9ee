// Package services contains stateless domain services that coordinate
// behavior across aggregates without owning state of their own.
package services
