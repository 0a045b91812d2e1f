package standard

import (
	"errors"
	"math"
	"testing"

	"github.com/example/modular-calculator-demo/domain/calc"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10/4", 2.5},
		{"7%3", 1},
		{"2^10", 1024},
		{"2^3^2", 512},
		{"-5", -5},
		{"--5", 5},
		{"-3^2", -9},
		{"3 + 4 * 2 / ( 1 - 5 )", 1},
		{"0.1+0.2", 0.30000000000000004},
		{"((2))", 2},
		{"5-2-1", 2},
	}

	for _, tc := range tests {
		got, err := Evaluate(tc.expr)
		if err != nil {
			t.Errorf("Evaluate(%q) error = %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	for _, expr := range []string{"10/0", "7%0", "1/(2-2)"} {
		_, err := Evaluate(expr)
		if !errors.Is(err, calc.ErrDivisionByZero) {
			t.Errorf("Evaluate(%q) error = %v, want ErrDivisionByZero", expr, err)
		}
	}
}

func TestEvaluate_UnbalancedParentheses(t *testing.T) {
	for _, expr := range []string{"(2+3", "2+3)", "((1)", "1)+2"} {
		_, err := Evaluate(expr)
		if !errors.Is(err, calc.ErrUnbalancedParentheses) {
			t.Errorf("Evaluate(%q) error = %v, want ErrUnbalancedParentheses", expr, err)
		}
	}
}

func TestEvaluate_ParseErrors(t *testing.T) {
	tests := []struct {
		expr string
	}{
		{""},
		{"   "},
		{"2a+1"},
		{"abc"},
		{"1..2"},
		{"2+"},
		{"*3"},
		{"1 $ 2"},
	}

	for _, tc := range tests {
		_, err := Evaluate(tc.expr)
		if err == nil {
			t.Errorf("Evaluate(%q) should fail", tc.expr)
			continue
		}
		if !calc.IsUserError(err) {
			t.Errorf("Evaluate(%q) error should be a user error, got %v", tc.expr, err)
		}
	}
}

func TestEvaluate_LettersRejectedWithHint(t *testing.T) {
	_, err := Evaluate("two plus two")
	if err == nil {
		t.Fatal("expected error")
	}
	var pe *calc.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Reason != "Please use numbers only" {
		t.Errorf("Reason = %q, want %q", pe.Reason, "Please use numbers only")
	}
}

func TestEvaluate_NonFiniteResult(t *testing.T) {
	_, err := Evaluate("10^10^10")
	if err == nil {
		t.Fatal("expected error for overflowing result")
	}
	if !calc.IsUserError(err) {
		t.Errorf("overflow error should be a user error, got %v", err)
	}
}
