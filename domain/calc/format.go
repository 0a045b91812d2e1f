package calc

import (
	"strconv"
	"strings"
)

// DisplayPrecision is the number of significant figures used when
// formatting results for display.
const DisplayPrecision = 9

// FormatResult formats a numerical result with DisplayPrecision significant
// figures, removing trailing zeros and normalizing negative zero to "0".
func FormatResult(v float64) string {
	s := strconv.FormatFloat(v, 'g', DisplayPrecision, 64)

	// Strip trailing zeros left in the fractional part.
	if strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}

	if s == "-0" {
		s = "0"
	}
	return s
}

// ParseValue parses a floating-point operand from user input.
func ParseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, NewParseError("Please use numbers only")
	}
	return v, nil
}
