package standard

import (
	"context"
	"strings"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
)

// Evaluation is the outcome of a successful expression evaluation.
type Evaluation struct {
	Expression string
	Value      float64
	Formatted  string
}

// Service evaluates standard arithmetic expressions.
type Service struct {
	bus *eventbus.EventBus
}

// NewService creates a new standard calculator service. The bus may be nil.
func NewService(bus *eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Evaluate evaluates an infix expression and formats the result.
func (s *Service) Evaluate(ctx context.Context, expression string) (*Evaluation, error) {
	trimmed := strings.TrimSpace(expression)

	value, err := Evaluate(trimmed)
	if err != nil {
		return nil, err
	}

	formatted := calc.FormatResult(value)
	if s.bus != nil {
		s.bus.PublishCalculationDone(ctx, calc.SourceStandard, trimmed, formatted)
	}

	return &Evaluation{
		Expression: trimmed,
		Value:      value,
		Formatted:  formatted,
	}, nil
}
