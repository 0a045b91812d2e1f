package eventbus

import (
	"context"
	"log"

	"github.com/go-monolith/mono"
)

// Module provides the event bus as a mono module.
type Module struct {
	bus *EventBus
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new eventbus module wrapping the given bus.
func NewModule(bus *EventBus) *Module {
	return &Module{bus: bus}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "eventbus"
}

// Start starts the module (the bus itself has no lifecycle).
func (m *Module) Start(_ context.Context) error {
	log.Println("[eventbus] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[eventbus] Module stopped")
	return nil
}

// Bus returns the underlying event bus.
func (m *Module) Bus() *EventBus {
	return m.bus
}
