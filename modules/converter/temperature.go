package converter

import (
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// absoluteZeroC is 0 K expressed in Celsius.
const absoluteZeroC = -273.15

// temperatureConverter handles the affine temperature scales. Kelvin is the
// base unit; conversions below absolute zero are rejected.
type temperatureConverter struct {
	units []Unit
}

var temperature = &temperatureConverter{
	units: []Unit{
		{Name: "Celsius", Symbol: "C"},
		{Name: "Kelvin", Symbol: "K"},
		{Name: "Fahrenheit", Symbol: "F"},
	},
}

func (c *temperatureConverter) Name() string     { return "temperature" }
func (c *temperatureConverter) BaseUnit() string { return "K" }
func (c *temperatureConverter) Units() []Unit    { return c.units }

func (c *temperatureConverter) toKelvin(value float64, from string) (float64, error) {
	switch from {
	case "C":
		return value - absoluteZeroC, nil
	case "K":
		return value, nil
	case "F":
		return (value-32)*5/9 - absoluteZeroC, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a temperature unit", calc.ErrUnknownUnit, from)
	}
}

func (c *temperatureConverter) fromKelvin(kelvin float64, to string) (float64, error) {
	switch to {
	case "C":
		return kelvin + absoluteZeroC, nil
	case "K":
		return kelvin, nil
	case "F":
		return (kelvin+absoluteZeroC)*9/5 + 32, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a temperature unit", calc.ErrUnknownUnit, to)
	}
}

func (c *temperatureConverter) Convert(value float64, from, to string) (float64, error) {
	kelvin, err := c.toKelvin(value, from)
	if err != nil {
		return 0, err
	}
	if kelvin < 0 {
		return 0, calc.NewDomainError("temperature below absolute zero")
	}
	return c.fromKelvin(kelvin, to)
}
