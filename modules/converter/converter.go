// Package converter provides the unit conversion router: each category has a
// canonical base unit, and every conversion goes value -> base -> target.
package converter

import (
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// Unit describes one selectable unit within a category.
type Unit struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Converter converts values between the units of one category.
type Converter interface {
	// Name returns the category name.
	Name() string
	// BaseUnit returns the symbol of the canonical base unit.
	BaseUnit() string
	// Units returns the selectable units in display order.
	Units() []Unit
	// Convert converts value from one unit symbol to another.
	Convert(value float64, from, to string) (float64, error)
}

// linearConverter handles categories whose units are fixed multiples of the
// base unit.
type linearConverter struct {
	name    string
	base    string
	units   []Unit
	factors map[string]float64 // symbol -> multiplier to base unit
}

func (c *linearConverter) Name() string     { return c.name }
func (c *linearConverter) BaseUnit() string { return c.base }
func (c *linearConverter) Units() []Unit    { return c.units }

func (c *linearConverter) Convert(value float64, from, to string) (float64, error) {
	fromFactor, ok := c.factors[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", calc.ErrUnknownUnit, from, c.name)
	}
	toFactor, ok := c.factors[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", calc.ErrUnknownUnit, to, c.name)
	}
	return value * fromFactor / toFactor, nil
}

// registry maps category names to their converters.
var registry = map[string]Converter{
	angle.Name():       angle,
	temperature.Name(): temperature,
	weight.Name():      weight,
	pressure.Name():    pressure,
	data.Name():        data,
}

// Categories returns the names of all conversion categories.
func Categories() []string {
	return []string{
		angle.Name(),
		temperature.Name(),
		weight.Name(),
		pressure.Name(),
		data.Name(),
	}
}

// Lookup returns the converter for a category name.
func Lookup(category string) (Converter, error) {
	c, ok := registry[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", calc.ErrUnknownCategory, category)
	}
	return c, nil
}
