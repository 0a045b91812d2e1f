package calc

import "errors"

// Sentinel errors shared across the calculator modules.
var (
	ErrDivisionByZero        = errors.New("division by zero")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses in expression")
	ErrUnknownFunction       = errors.New("unknown function")
	ErrUnknownCategory       = errors.New("unknown conversion category")
	ErrUnknownUnit           = errors.New("unknown unit")
)

// DomainError reports an operand outside the mathematical domain of the
// requested operation.
type DomainError struct {
	Reason string
}

// NewDomainError creates a DomainError with the given reason.
func NewDomainError(reason string) *DomainError {
	return &DomainError{Reason: reason}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return "Domain Error: " + e.Reason
}

// ParseError reports malformed numeric or expression input.
type ParseError struct {
	Reason string
}

// NewParseError creates a ParseError with the given reason.
func NewParseError(reason string) *ParseError {
	return &ParseError{Reason: reason}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "Parse Error: " + e.Reason
}

// IsUserError reports whether err should be surfaced to the caller as a
// message rather than treated as an internal failure. Domain and parse
// errors are expected outcomes of invalid input.
func IsUserError(err error) bool {
	var de *DomainError
	var pe *ParseError
	if errors.As(err, &de) || errors.As(err, &pe) {
		return true
	}
	return errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrUnbalancedParentheses) ||
		errors.Is(err, ErrUnknownFunction) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrUnknownUnit)
}
