package converter

// Weight conversion uses kilograms as the base unit. The imperial factors
// carry six significant figures, the precision the conversion tables were
// published with.
var weight = &linearConverter{
	name: "weight",
	base: "kg",
	units: []Unit{
		{Name: "Kilogram", Symbol: "kg"},
		{Name: "Gram", Symbol: "g"},
		{Name: "Milligram", Symbol: "mg"},
		{Name: "Centigram", Symbol: "cg"},
		{Name: "Decigram", Symbol: "dg"},
		{Name: "Decagram", Symbol: "dag"},
		{Name: "Hectogram", Symbol: "hg"},
		{Name: "Metric Tonne", Symbol: "t"},
		{Name: "Ounce", Symbol: "oz"},
		{Name: "Pound", Symbol: "lb"},
		{Name: "Stone", Symbol: "st"},
		{Name: "Short Ton (US)", Symbol: "ton-us"},
		{Name: "Long Ton (UK)", Symbol: "ton-uk"},
	},
	factors: map[string]float64{
		"kg":     1,
		"g":      0.001,
		"mg":     0.000001,
		"cg":     0.00001,
		"dg":     0.0001,
		"dag":    0.01,
		"hg":     0.1,
		"t":      1000,
		"oz":     0.0283495,
		"lb":     0.453592,
		"st":     6.35029,
		"ton-us": 907.185,
		"ton-uk": 1016.05,
	},
}
