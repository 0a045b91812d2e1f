package calc

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"domain error", NewDomainError("asymptote"), true},
		{"parse error", NewParseError("malformed"), true},
		{"wrapped domain error", fmt.Errorf("outer: %w", NewDomainError("x")), true},
		{"division by zero", ErrDivisionByZero, true},
		{"unbalanced parens", ErrUnbalancedParentheses, true},
		{"wrapped sentinel", fmt.Errorf("%w: %q", ErrUnknownUnit, "furlong"), true},
		{"unknown function", ErrUnknownFunction, true},
		{"unknown category", ErrUnknownCategory, true},
		{"plain error", errors.New("disk on fire"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUserError(tc.err); got != tc.want {
				t.Errorf("IsUserError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	de := NewDomainError("Input x must satisfy |x| <= 1")
	if de.Error() != "Domain Error: Input x must satisfy |x| <= 1" {
		t.Errorf("DomainError message = %q", de.Error())
	}

	pe := NewParseError("Please use numbers only")
	if pe.Error() != "Parse Error: Please use numbers only" {
		t.Errorf("ParseError message = %q", pe.Error())
	}
}
