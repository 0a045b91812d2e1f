package converter

import "math"

// Angle conversion uses degrees as the base unit. Gradians are defined as
// 200 grad = 180°.
var angle = &linearConverter{
	name: "angle",
	base: "deg",
	units: []Unit{
		{Name: "Degree", Symbol: "deg"},
		{Name: "Radian", Symbol: "rad"},
		{Name: "Gradian", Symbol: "grad"},
	},
	factors: map[string]float64{
		"deg":  1,
		"rad":  180 / math.Pi,
		"grad": 180.0 / 200.0,
	},
}
