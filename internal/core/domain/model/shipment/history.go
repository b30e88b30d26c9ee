package shipment

import "time"

// StatusEvent records one status value and the moment it was applied.
// Instances are created only by Shipment.UpdateStatus.
type StatusEvent struct {
	status    Status
	timestamp time.Time
}

func newStatusEvent(status Status, timestamp time.Time) StatusEvent {
	return StatusEvent{status: status, timestamp: timestamp}
}

// Status returns the status value the event recorded.
func (e StatusEvent) Status() Status {
	return e.status
}

// Timestamp returns when the status was applied.
func (e StatusEvent) Timestamp() time.Time {
	return e.timestamp
}

// History is the append-only list of status events of a shipment.
// Entries are appended in call order, so their timestamps are monotonically
// non-decreasing, and are never removed.
type History struct {
	entries []StatusEvent
}

func (h *History) append(e StatusEvent) {
	h.entries = append(h.entries, e)
}

// Entries returns a copy of the recorded events in append order.
func (h *History) Entries() []StatusEvent {
	entries := make([]StatusEvent, len(h.entries))
	copy(entries, h.entries)
	return entries
}
