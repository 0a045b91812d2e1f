package converter

// Data conversion uses the bit as the base unit. SI prefixes scale by powers
// of 1000, IEC prefixes by powers of 1024, for both bits and bytes.
var data = &linearConverter{
	name: "data",
	base: "bit",
	units: []Unit{
		{Name: "Bit", Symbol: "bit"},
		{Name: "Nibble", Symbol: "nibble"},
		{Name: "Byte", Symbol: "B"},
		{Name: "Kilobit", Symbol: "kbit"},
		{Name: "Megabit", Symbol: "Mbit"},
		{Name: "Gigabit", Symbol: "Gbit"},
		{Name: "Terabit", Symbol: "Tbit"},
		{Name: "Petabit", Symbol: "Pbit"},
		{Name: "Exabit", Symbol: "Ebit"},
		{Name: "Zettabit", Symbol: "Zbit"},
		{Name: "Yottabit", Symbol: "Ybit"},
		{Name: "Kibibit", Symbol: "Kibit"},
		{Name: "Mebibit", Symbol: "Mibit"},
		{Name: "Gibibit", Symbol: "Gibit"},
		{Name: "Tebibit", Symbol: "Tibit"},
		{Name: "Pebibit", Symbol: "Pibit"},
		{Name: "Exbibit", Symbol: "Eibit"},
		{Name: "Zebibit", Symbol: "Zibit"},
		{Name: "Yobibit", Symbol: "Yibit"},
		{Name: "Kilobyte", Symbol: "kB"},
		{Name: "Megabyte", Symbol: "MB"},
		{Name: "Gigabyte", Symbol: "GB"},
		{Name: "Terabyte", Symbol: "TB"},
		{Name: "Petabyte", Symbol: "PB"},
		{Name: "Exabyte", Symbol: "EB"},
		{Name: "Zettabyte", Symbol: "ZB"},
		{Name: "Yottabyte", Symbol: "YB"},
		{Name: "Kibibyte", Symbol: "KiB"},
		{Name: "Mebibyte", Symbol: "MiB"},
		{Name: "Gibibyte", Symbol: "GiB"},
		{Name: "Tebibyte", Symbol: "TiB"},
		{Name: "Pebibyte", Symbol: "PiB"},
		{Name: "Exbibyte", Symbol: "EiB"},
		{Name: "Zebibyte", Symbol: "ZiB"},
		{Name: "Yobibyte", Symbol: "YiB"},
	},
	factors: map[string]float64{
		"bit":    1,
		"nibble": 4,
		"B":      8,

		"kbit": 1e3,
		"Mbit": 1e6,
		"Gbit": 1e9,
		"Tbit": 1e12,
		"Pbit": 1e15,
		"Ebit": 1e18,
		"Zbit": 1e21,
		"Ybit": 1e24,

		"Kibit": 1 << 10,
		"Mibit": 1 << 20,
		"Gibit": 1 << 30,
		"Tibit": 1 << 40,
		"Pibit": 1 << 50,
		"Eibit": 1 << 60,
		"Zibit": 1 << 70,
		"Yibit": 1 << 80,

		"kB": 8e3,
		"MB": 8e6,
		"GB": 8e9,
		"TB": 8e12,
		"PB": 8e15,
		"EB": 8e18,
		"ZB": 8e21,
		"YB": 8e24,

		"KiB": 8 << 10,
		"MiB": 8 << 20,
		"GiB": 8 << 30,
		"TiB": 8 << 40,
		"PiB": 8 << 50,
		"EiB": 8 << 60,
		"ZiB": 8 << 70,
		"YiB": 8 << 80,
	},
}
