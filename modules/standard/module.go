package standard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the standard calculator as a mono module.
type Module struct {
	service *Service
	bus     *eventbus.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new standard calculator module.
func NewModule(bus *eventbus.EventBus) *Module {
	return &Module{bus: bus}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "standard"
}

// Init initializes the service.
func (m *Module) Init(_ mono.ServiceContainer) error {
	m.service = NewService(m.bus)
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[standard] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[standard] Module stopped")
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"evaluate",
		json.Unmarshal,
		json.Marshal,
		m.handleEvaluate,
	); err != nil {
		return fmt.Errorf("failed to register evaluate service: %w", err)
	}

	log.Println("[standard] Registered services: evaluate")
	return nil
}

// handleEvaluate handles expression evaluation requests.
func (m *Module) handleEvaluate(ctx context.Context, req EvaluateRequest, _ *mono.Msg) (EvaluateResponse, error) {
	eval, err := m.service.Evaluate(ctx, req.Expression)
	if err != nil {
		if calc.IsUserError(err) {
			return EvaluateResponse{Error: err.Error()}, nil
		}
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{
		Expression: eval.Expression,
		Result:     eval.Formatted,
		Value:      eval.Value,
	}, nil
}

// GetService returns the service instance.
func (m *Module) GetService() *Service {
	return m.service
}
