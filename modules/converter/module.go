package converter

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

// Module provides the unit conversion router as a mono module.
type Module struct {
	service *Service
	bus     *eventbus.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new converter module.
func NewModule(bus *eventbus.EventBus) *Module {
	return &Module{bus: bus}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "converter"
}

// Init initializes the service.
func (m *Module) Init(_ mono.ServiceContainer) error {
	m.service = NewService(m.bus)
	log.Printf("[converter] Initialized with %d categories", len(registry))
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[converter] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[converter] Module stopped")
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"convert",
		json.Unmarshal,
		json.Marshal,
		m.handleConvert,
	); err != nil {
		return fmt.Errorf("failed to register convert service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"categories",
		json.Unmarshal,
		json.Marshal,
		m.handleCategories,
	); err != nil {
		return fmt.Errorf("failed to register categories service: %w", err)
	}

	log.Println("[converter] Registered services: convert, categories")
	return nil
}

// handleConvert handles conversion requests.
func (m *Module) handleConvert(ctx context.Context, req ConvertRequest, _ *mono.Msg) (ConvertResponse, error) {
	conv, err := m.service.Convert(ctx, req.Category, req.From, req.To, req.Value)
	if err != nil {
		if calc.IsUserError(err) {
			return ConvertResponse{Error: err.Error()}, nil
		}
		return ConvertResponse{}, err
	}

	return ConvertResponse{
		Category:  conv.Category,
		From:      conv.From,
		To:        conv.To,
		Value:     conv.Value,
		Result:    conv.Result,
		Formatted: conv.Formatted,
	}, nil
}

// handleCategories returns the unit catalog.
func (m *Module) handleCategories(_ context.Context, _ CategoriesRequest, _ *mono.Msg) (CategoriesResponse, error) {
	return CategoriesResponse{Categories: m.service.Catalog()}, nil
}

// GetService returns the service instance.
func (m *Module) GetService() *Service {
	return m.service
}
