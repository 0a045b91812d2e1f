// Package eventbus provides an in-memory event bus for calculation events.
package eventbus

import (
	"context"
	"log"
	"sync"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// EventHandler is a function that handles calculation events.
type EventHandler func(event calc.Event)

// EventBus provides publish-subscribe functionality for calculation events.
type EventBus struct {
	handlers map[calc.EventType][]EventHandler
	mu       sync.RWMutex
}

// New creates a new EventBus.
func New() *EventBus {
	return &EventBus{
		handlers: make(map[calc.EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type.
func (eb *EventBus) Subscribe(eventType calc.EventType, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
	log.Printf("[eventbus] Subscribed to %s", eventType)
}

// Publish publishes an event to all registered handlers.
func (eb *EventBus) Publish(_ context.Context, event calc.Event) {
	eb.mu.RLock()
	handlers := eb.handlers[event.Type]
	eb.mu.RUnlock()

	for _, handler := range handlers {
		// Run handlers asynchronously to not block the publisher
		go func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[eventbus] Handler panic for %s: %v", event.Type, r)
				}
			}()
			h(event)
		}(handler)
	}
}

// PublishCalculationDone publishes a calculation done event.
func (eb *EventBus) PublishCalculationDone(ctx context.Context, source calc.Source, expression, result string) {
	eb.Publish(ctx, calc.NewCalculationDoneEvent(source, expression, result))
}

// PublishHistoryCleared publishes a history cleared event.
func (eb *EventBus) PublishHistoryCleared(ctx context.Context) {
	eb.Publish(ctx, calc.NewHistoryClearedEvent())
}
