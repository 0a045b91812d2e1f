package converter

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/example/modular-calculator-demo/domain/calc"
)

func convert(t *testing.T, category, from, to string, value float64) float64 {
	t.Helper()
	c, err := Lookup(category)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", category, err)
	}
	got, err := c.Convert(value, from, to)
	if err != nil {
		t.Fatalf("Convert(%v, %q, %q) error = %v", value, from, to, err)
	}
	return got
}

func TestConvert_KnownValues(t *testing.T) {
	tests := []struct {
		category string
		from, to string
		value    float64
		want     float64
		delta    float64
	}{
		{"angle", "deg", "rad", 180, math.Pi, 1e-12},
		{"angle", "grad", "deg", 200, 180, 1e-12},
		{"angle", "rad", "deg", math.Pi / 2, 90, 1e-12},
		{"temperature", "C", "K", 0, 273.15, 1e-9},
		{"temperature", "C", "F", 100, 212, 1e-9},
		{"temperature", "F", "C", 32, 0, 1e-9},
		{"temperature", "K", "C", 273.15, 0, 1e-9},
		{"weight", "kg", "g", 1, 1000, 1e-9},
		{"weight", "lb", "kg", 1, 0.453592, 1e-9},
		{"weight", "st", "lb", 1, 14.0000441, 1e-4},
		{"weight", "t", "kg", 1, 1000, 1e-9},
		{"pressure", "atm", "Pa", 1, 101325, 1e-6},
		{"pressure", "bar", "kPa", 1, 100, 1e-9},
		{"pressure", "atm", "kPa", 1, 101.325, 1e-9},
		{"data", "B", "bit", 1, 8, 0},
		{"data", "GB", "GiB", 500, 465.6612873077393, 1e-6},
		{"data", "KiB", "B", 1, 1024, 0},
		{"data", "Mbit", "kbit", 1, 1000, 0},
	}

	for _, tc := range tests {
		got := convert(t, tc.category, tc.from, tc.to, tc.value)
		if math.Abs(got-tc.want) > tc.delta {
			t.Errorf("%s: %v %s -> %s = %v, want %v", tc.category, tc.value, tc.from, tc.to, got, tc.want)
		}
	}
}

// Converting A -> B -> A must return the original value for every unit pair
// within a category.
func TestConvert_RoundTrip(t *testing.T) {
	const value = 123.456

	for _, name := range Categories() {
		c, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}

		units := c.Units()
		base := c.BaseUnit()
		for _, u := range units {
			forward, err := c.Convert(value, base, u.Symbol)
			if err != nil {
				t.Errorf("%s: %s -> %s error = %v", name, base, u.Symbol, err)
				continue
			}
			back, err := c.Convert(forward, u.Symbol, base)
			if err != nil {
				t.Errorf("%s: %s -> %s error = %v", name, u.Symbol, base, err)
				continue
			}
			if math.Abs(back-value) > 1e-6*math.Abs(value) {
				t.Errorf("%s: round trip %s <-> %s = %v, want %v", name, base, u.Symbol, back, value)
			}
		}
	}
}

func TestConvert_BelowAbsoluteZero(t *testing.T) {
	c, err := Lookup("temperature")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	for _, tc := range []struct {
		from  string
		value float64
	}{
		{"C", -300},
		{"K", -1},
		{"F", -500},
	} {
		if _, err := c.Convert(tc.value, tc.from, "K"); err == nil {
			t.Errorf("Convert(%v %s) should reject temperatures below absolute zero", tc.value, tc.from)
		}
	}

	// Absolute zero itself is a valid temperature.
	if _, err := c.Convert(-273.15, "C", "K"); err != nil {
		t.Errorf("Convert(-273.15 C) error = %v", err)
	}
}

func TestConvert_UnknownCategoryAndUnit(t *testing.T) {
	if _, err := Lookup("currency"); !errors.Is(err, calc.ErrUnknownCategory) {
		t.Errorf("Lookup(currency) error = %v, want ErrUnknownCategory", err)
	}

	c, _ := Lookup("weight")
	if _, err := c.Convert(1, "kg", "furlong"); !errors.Is(err, calc.ErrUnknownUnit) {
		t.Errorf("Convert to furlong error = %v, want ErrUnknownUnit", err)
	}
	if _, err := c.Convert(1, "parsec", "kg"); !errors.Is(err, calc.ErrUnknownUnit) {
		t.Errorf("Convert from parsec error = %v, want ErrUnknownUnit", err)
	}
}

func TestCategories(t *testing.T) {
	want := []string{"angle", "temperature", "weight", "pressure", "data"}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestService_Catalog(t *testing.T) {
	svc := NewService(nil)
	infos := svc.Catalog()
	if len(infos) != 5 {
		t.Fatalf("Catalog() returned %d categories, want 5", len(infos))
	}
	for _, info := range infos {
		if info.BaseUnit == "" {
			t.Errorf("category %q has no base unit", info.Name)
		}
		if len(info.Units) == 0 {
			t.Errorf("category %q has no units", info.Name)
		}
	}
}

func TestService_ConvertFormatted(t *testing.T) {
	svc := NewService(nil)
	conv, err := svc.Convert(context.Background(), "data", "GB", "GiB", 500)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if conv.Formatted != "465.661287" {
		t.Errorf("Formatted = %q, want %q", conv.Formatted, "465.661287")
	}
}
