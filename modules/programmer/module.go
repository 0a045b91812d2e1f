package programmer

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

// Module provides the programmer calculator as a mono module.
type Module struct {
	service *Service
	bus     *eventbus.EventBus
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)

// NewModule creates a new programmer calculator module.
func NewModule(bus *eventbus.EventBus) *Module {
	return &Module{bus: bus}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "programmer"
}

// Init initializes the service.
func (m *Module) Init(_ mono.ServiceContainer) error {
	m.service = NewService(m.bus)
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[programmer] Module started")
	return nil
}

// Stop stops the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[programmer] Module stopped")
	return nil
}

// RegisterServices registers request-reply services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container,
		"convert-base",
		json.Unmarshal,
		json.Marshal,
		m.handleConvertBase,
	); err != nil {
		return fmt.Errorf("failed to register convert-base service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container,
		"bitwise",
		json.Unmarshal,
		json.Marshal,
		m.handleBitwise,
	); err != nil {
		return fmt.Errorf("failed to register bitwise service: %w", err)
	}

	log.Println("[programmer] Registered services: convert-base, bitwise")
	return nil
}

// handleConvertBase handles base conversion requests.
func (m *Module) handleConvertBase(ctx context.Context, req ConvertBaseRequest, _ *mono.Msg) (ConvertBaseResponse, error) {
	conv, err := m.service.ConvertBase(ctx, req.Value, req.To, req.WordSize)
	if err != nil {
		if calc.IsUserError(err) {
			return ConvertBaseResponse{Error: err.Error()}, nil
		}
		return ConvertBaseResponse{}, err
	}

	return ConvertBaseResponse{
		Input:    conv.Input,
		Decimal:  conv.Decimal,
		Result:   conv.Result,
		WordSize: int(conv.WordSize),
	}, nil
}

// handleBitwise handles bitwise operation requests.
func (m *Module) handleBitwise(ctx context.Context, req BitwiseRequest, _ *mono.Msg) (BitwiseResponse, error) {
	res, err := m.service.Bitwise(ctx, req.Op, req.A, req.B, req.WordSize)
	if err != nil {
		if calc.IsUserError(err) {
			return BitwiseResponse{Error: err.Error()}, nil
		}
		return BitwiseResponse{}, err
	}

	return BitwiseResponse{
		Decimal:  res.Decimal,
		Hex:      res.Hex,
		Binary:   res.Binary,
		Octal:    res.Octal,
		WordSize: int(res.WordSize),
	}, nil
}

// GetService returns the service instance.
func (m *Module) GetService() *Service {
	return m.service
}
