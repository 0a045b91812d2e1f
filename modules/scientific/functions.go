// Package scientific provides the domain-guarded scientific function dispatch.
//
// The registry maps each of the 24 supported functions to a domain predicate
// and an evaluator. Angles are taken and returned in degrees, matching the
// calculator's display conventions.
package scientific

import (
	"math"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// Category groups functions for validation purposes.
type Category int

const (
	Trigonometric Category = iota + 1
	InverseTrigonometric
	Hyperbolic
	InverseHyperbolic
)

// Function identifies a scientific function.
type Function string

const (
	Sin     Function = "sin"
	Cos     Function = "cos"
	Tan     Function = "tan"
	Cot     Function = "cot"
	Sec     Function = "sec"
	Cosec   Function = "cosec"
	Asin    Function = "asin"
	Acos    Function = "acos"
	Atan    Function = "atan"
	Acot    Function = "acot"
	Asec    Function = "asec"
	Acosec  Function = "acosec"
	Sinh    Function = "sinh"
	Cosh    Function = "cosh"
	Tanh    Function = "tanh"
	Coth    Function = "coth"
	Sech    Function = "sech"
	Cosech  Function = "cosech"
	Asinh   Function = "asinh"
	Acosh   Function = "acosh"
	Atanh   Function = "atanh"
	Acoth   Function = "acoth"
	Asech   Function = "asech"
	Acosech Function = "acosech"
)

// angleTolerance is the tolerance used when detecting asymptotes of the
// degree-based trigonometric functions.
const angleTolerance = 1e-9

// entry describes a registered function: display name, category, domain
// guard and evaluator.
type entry struct {
	display  string
	category Category
	guard    func(v float64) error
	eval     func(v float64) float64
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// degreeRemainder reduces an angle in degrees to [0, 180).
func degreeRemainder(deg float64) float64 {
	m := math.Mod(deg, 180)
	if m < 0 {
		m += 180
	}
	return m
}

// Asymptote guards for the degree-based trigonometric functions.

func guardTanSec(v float64) error {
	if math.Abs(degreeRemainder(v)-90) <= angleTolerance {
		return calc.NewDomainError("Division by zero (Asymptote at n*180° + 90°)")
	}
	return nil
}

func guardCotCosec(v float64) error {
	m := degreeRemainder(v)
	if m <= angleTolerance || 180-m <= angleTolerance {
		return calc.NewDomainError("Division by zero (Asymptote at n*180°)")
	}
	return nil
}

func guardNonZero(v float64) error {
	if v == 0 {
		return calc.NewDomainError("Division by zero (Undefined at x=0)")
	}
	return nil
}

func guardAbsAtMostOne(v float64) error {
	if v < -1 || v > 1 {
		return calc.NewDomainError("Input x must satisfy |x| <= 1")
	}
	return nil
}

func guardAbsAtLeastOne(v float64) error {
	if v > -1 && v < 1 {
		return calc.NewDomainError("Input x must satisfy |x| >= 1")
	}
	return nil
}

func guardAcosh(v float64) error {
	if v < 1 {
		return calc.NewDomainError("acosh(x) requires x >= 1")
	}
	return nil
}

func guardAtanh(v float64) error {
	if v <= -1 || v >= 1 {
		return calc.NewDomainError("atanh(x) requires x in open interval (-1, 1)")
	}
	return nil
}

func guardAcoth(v float64) error {
	if v >= -1 && v <= 1 {
		return calc.NewDomainError("acoth(x) requires x outside closed interval [-1, 1]")
	}
	return nil
}

func guardAsech(v float64) error {
	if v <= 0 || v > 1 {
		return calc.NewDomainError("asech(x) requires x in range (0, 1]")
	}
	return nil
}

func guardAcosech(v float64) error {
	if v == 0 {
		return calc.NewDomainError("acosech(x) is undefined at x=0")
	}
	return nil
}

func noGuard(float64) error { return nil }

// registry is the dispatch table for all supported functions.
var registry = map[Function]entry{
	// Trigonometric (input in degrees)
	Sin:   {"sin", Trigonometric, noGuard, func(v float64) float64 { return math.Sin(radians(v)) }},
	Cos:   {"cos", Trigonometric, noGuard, func(v float64) float64 { return math.Cos(radians(v)) }},
	Tan:   {"tan", Trigonometric, guardTanSec, func(v float64) float64 { return math.Tan(radians(v)) }},
	Cot:   {"cot", Trigonometric, guardCotCosec, func(v float64) float64 { return math.Cos(radians(v)) / math.Sin(radians(v)) }},
	Sec:   {"sec", Trigonometric, guardTanSec, func(v float64) float64 { return 1 / math.Cos(radians(v)) }},
	Cosec: {"cosec", Trigonometric, guardCotCosec, func(v float64) float64 { return 1 / math.Sin(radians(v)) }},

	// Inverse trigonometric (output in degrees)
	Asin: {"sin⁻¹", InverseTrigonometric, guardAbsAtMostOne, func(v float64) float64 { return degrees(math.Asin(v)) }},
	Acos: {"cos⁻¹", InverseTrigonometric, guardAbsAtMostOne, func(v float64) float64 { return degrees(math.Acos(v)) }},
	Atan: {"tan⁻¹", InverseTrigonometric, noGuard, func(v float64) float64 { return degrees(math.Atan(v)) }},
	Acot: {"cot⁻¹", InverseTrigonometric, noGuard, func(v float64) float64 {
		// cot⁻¹(0) = 90° by convention.
		if v == 0 {
			return 90
		}
		return degrees(math.Atan(1 / v))
	}},
	Asec:   {"sec⁻¹", InverseTrigonometric, guardAbsAtLeastOne, func(v float64) float64 { return degrees(math.Acos(1 / v)) }},
	Acosec: {"cosec⁻¹", InverseTrigonometric, guardAbsAtLeastOne, func(v float64) float64 { return degrees(math.Asin(1 / v)) }},

	// Hyperbolic
	Sinh:   {"sinh", Hyperbolic, noGuard, math.Sinh},
	Cosh:   {"cosh", Hyperbolic, noGuard, math.Cosh},
	Tanh:   {"tanh", Hyperbolic, noGuard, math.Tanh},
	Coth:   {"coth", Hyperbolic, guardNonZero, func(v float64) float64 { return math.Cosh(v) / math.Sinh(v) }},
	Sech:   {"sech", Hyperbolic, noGuard, func(v float64) float64 { return 1 / math.Cosh(v) }},
	Cosech: {"cosech", Hyperbolic, guardNonZero, func(v float64) float64 { return 1 / math.Sinh(v) }},

	// Inverse hyperbolic
	Asinh:   {"sinh⁻¹", InverseHyperbolic, noGuard, math.Asinh},
	Acosh:   {"cosh⁻¹", InverseHyperbolic, guardAcosh, math.Acosh},
	Atanh:   {"tanh⁻¹", InverseHyperbolic, guardAtanh, math.Atanh},
	Acoth:   {"coth⁻¹", InverseHyperbolic, guardAcoth, func(v float64) float64 { return math.Atanh(1 / v) }},
	Asech:   {"sech⁻¹", InverseHyperbolic, guardAsech, func(v float64) float64 { return math.Acosh(1 / v) }},
	Acosech: {"cosech⁻¹", InverseHyperbolic, guardAcosech, func(v float64) float64 { return math.Asinh(1 / v) }},
}

// Functions returns the identifiers of all registered functions.
func Functions() []Function {
	names := make([]Function, 0, len(registry))
	for f := range registry {
		names = append(names, f)
	}
	return names
}
