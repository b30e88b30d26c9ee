// Package shipment contains the tracked-parcel aggregate and its state
// machine.
//
// A Shipment binds a tracking number to the carrier that validated it,
// carries an enumerated status with an append-only event history, and
// maintains a case-insensitive unique tag set. The tracking link is computed
// once at construction and never changes.
//
// Status transitions are membership-checked, not sequence-checked: the status
// set is closed but any member may follow any other, because real carrier
// feeds move parcels back and forth between states.
package shipment
