package events

import (
	"cmp"
	"log"
	"slices"
	"sync"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution. Listeners run synchronously on the
// emitting goroutine in ascending priority order.
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

func byPriority(a, b EventListener) int {
	return cmp.Compare(a.Priority(), b.Priority())
}

// Subscribe adds a listener for each of eventTypes. Equal priorities keep
// subscription order.
func (b *Bus) Subscribe(listener EventListener, eventTypes ...EventType) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range eventTypes {
		list := append(b.listeners[eventType], listener)
		slices.SortStableFunc(list, byPriority)
		b.listeners[eventType] = list

		log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
			listener.ID(), eventType, listener.Priority())
	}
}

// Unsubscribe removes a listener from one event type
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	before := len(b.listeners[eventType])
	b.listeners[eventType] = slices.DeleteFunc(b.listeners[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})
	if len(b.listeners[eventType]) < before {
		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
	}
}

// ListenerCount returns how many listeners are subscribed to eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit hands an event to each listener until one cancels it or fails. A nil
// bus drops the event.
func (b *Bus) Emit(event Event) error {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	listeners := slices.Clone(b.listeners[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}
		if err := listener.HandleEvent(event); err != nil {
			return dnderr.Wrapf(err, "listener %s failed on %s", listener.ID(), event.GetType())
		}
	}
	return nil
}
