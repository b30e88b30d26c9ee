package ports

import "parceltrack/internal/core/events"

// EventPublisher is the outbound notification sink of the application core.
// Publication is synchronous: Publish returns after every subscriber of the
// backing bus has been invoked.
type EventPublisher interface {
	Publish(event events.Event)
}
