package inventory

import (
	"context"
	"sync"
	"time"
)

// EventStoreChanged is published after a record has been appended.
const EventStoreChanged = "store.changed"

// Event is a notification raised by the inventory service.
type Event struct {
	Type   string
	Stream string
	Data   interface{}
	Time   time.Time
}

func NewEvent(eventType, stream string, data interface{}) Event {
	return Event{Type: eventType, Stream: stream, Data: data, Time: time.Now()}
}

// EventHandler reacts to a published event.
type EventHandler func(ctx context.Context, e Event)

// Bus delivers events synchronously to the handlers subscribed to their type,
// in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]EventHandler)}
}

func (b *Bus) Subscribe(eventType string, h EventHandler) {
	b.mu.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
	b.mu.Unlock()
}

func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.handlers[e.Type]...)
	b.mu.RUnlock()
	for _, h := range handlers {
		h(ctx, e)
	}
}
