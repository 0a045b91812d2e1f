package converter

// Pressure conversion uses pascals as the base unit.
var pressure = &linearConverter{
	name: "pressure",
	base: "Pa",
	units: []Unit{
		{Name: "Atmosphere", Symbol: "atm"},
		{Name: "Bar", Symbol: "bar"},
		{Name: "Kilopascal", Symbol: "kPa"},
		{Name: "Millimeter of Mercury", Symbol: "mmHg"},
		{Name: "Pascal", Symbol: "Pa"},
		{Name: "Pounds per Square Inch", Symbol: "psi"},
	},
	factors: map[string]float64{
		"atm":  101325,
		"bar":  100000,
		"kPa":  1000,
		"mmHg": 133.322,
		"Pa":   1,
		"psi":  6894.76,
	},
}
