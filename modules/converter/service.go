package converter

import (
	"context"
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
)

// Conversion is the outcome of a successful unit conversion.
type Conversion struct {
	Category  string
	From      string
	To        string
	Value     float64
	Result    float64
	Formatted string
}

// Service routes conversions to the category converters.
type Service struct {
	bus *eventbus.EventBus
}

// NewService creates a new conversion service. The bus may be nil.
func NewService(bus *eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

// Convert converts value between two units of the same category.
func (s *Service) Convert(ctx context.Context, category, from, to string, value float64) (*Conversion, error) {
	c, err := Lookup(category)
	if err != nil {
		return nil, err
	}

	result, err := c.Convert(value, from, to)
	if err != nil {
		return nil, err
	}

	formatted := calc.FormatResult(result)
	if s.bus != nil {
		expr := fmt.Sprintf("%s %s -> %s", calc.FormatResult(value), from, to)
		s.bus.PublishCalculationDone(ctx, calc.SourceConverter, expr, formatted+" "+to)
	}

	return &Conversion{
		Category:  category,
		From:      from,
		To:        to,
		Value:     value,
		Result:    result,
		Formatted: formatted,
	}, nil
}

// Catalog returns the unit catalog for every category.
func (s *Service) Catalog() []CategoryInfo {
	infos := make([]CategoryInfo, 0, len(registry))
	for _, name := range Categories() {
		c := registry[name]
		infos = append(infos, CategoryInfo{
			Name:     c.Name(),
			BaseUnit: c.BaseUnit(),
			Units:    c.Units(),
		})
	}
	return infos
}
