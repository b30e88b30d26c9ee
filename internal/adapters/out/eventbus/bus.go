// Package eventbus provides a synchronous in-process event dispatcher.
package eventbus

import (
	"log/slog"
	"sync"

	"parceltrack/internal/core/events"
)

// Handler consumes a single domain event.
type Handler func(event events.Event)

// Bus delivers events to subscribers in registration order on the
// publisher's goroutine. A panicking subscriber is logged and skipped;
// delivery to the remaining subscribers continues.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   *slog.Logger
}

// NewBus creates an event bus that reports subscriber panics to logger.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger}
}

// Subscribe registers a handler for all published events. Nil handlers
// are ignored.
func (b *Bus) Subscribe(handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish dispatches the event to every subscriber and returns after the
// last one has run.
func (b *Bus) Publish(event events.Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(handler, event)
	}
}

func (b *Bus) dispatch(handler Handler, event events.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", string(event.Name),
				"panic", r,
			)
		}
	}()

	handler(event)
}
