package calc

import "testing"

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0.49999999999999994, "0.5"},
		{30.000000000000004, "30"},
		{-0.0, "0"},
		{1024, "1024"},
		{2.5, "2.5"},
		{1e20, "1e+20"},
		{0.000001, "1e-06"},
		{465.6612873077393, "465.661287"},
		{-9, "-9"},
	}

	for _, tc := range tests {
		got := FormatResult(tc.in)
		if got != tc.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue("  3.25 ")
	if err != nil {
		t.Fatalf("ParseValue() error = %v", err)
	}
	if v != 3.25 {
		t.Errorf("ParseValue() = %v, want 3.25", v)
	}

	if _, err := ParseValue("abc"); err == nil {
		t.Error("ParseValue() should reject non-numeric input")
	}
}
