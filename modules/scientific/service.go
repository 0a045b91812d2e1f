package scientific

import (
	"context"
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
)

// Evaluation is the outcome of a successful scientific calculation.
type Evaluation struct {
	Expression string
	Value      float64
	Formatted  string
}

// Service evaluates scientific functions after validating their domains.
type Service struct {
	bus *eventbus.EventBus
}

// NewService creates a new scientific service. The bus may be nil when
// history recording is not wanted (e.g. in tests).
func NewService(bus *eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Evaluate validates the operand against the function's domain predicate,
// computes the result and formats it for display.
func (s *Service) Evaluate(ctx context.Context, fn Function, value float64) (*Evaluation, error) {
	e, ok := registry[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", calc.ErrUnknownFunction, fn)
	}

	if err := e.guard(value); err != nil {
		return nil, err
	}

	result := e.eval(value)
	formatted := calc.FormatResult(result)
	expression := fmt.Sprintf("%s(%s)", e.display, calc.FormatResult(value))

	if s.bus != nil {
		s.bus.PublishCalculationDone(ctx, calc.SourceScientific, expression, formatted)
	}

	return &Evaluation{
		Expression: expression,
		Value:      result,
		Formatted:  formatted,
	}, nil
}
