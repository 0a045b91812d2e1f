package programmer

import (
	"context"
	"fmt"

	"github.com/example/modular-calculator-demo/domain/calc"
	"github.com/example/modular-calculator-demo/modules/eventbus"
)

// DefaultWordSize is used when a request does not specify one.
const DefaultWordSize = Word32

// Service performs programmer-calculator operations.
type Service struct {
	bus *eventbus.EventBus
}

// NewService creates a new programmer service. The bus may be nil.
func NewService(bus *eventbus.EventBus) *Service {
	return &Service{bus: bus}
}

func resolveWordSize(n int) (WordSize, error) {
	if n == 0 {
		return DefaultWordSize, nil
	}
	w := WordSize(n)
	if !w.Valid() {
		return 0, calc.NewParseError(fmt.Sprintf("word size must be 8, 16, 32 or 64, got %d", n))
	}
	return w, nil
}

// ConvertBase parses an integer literal and renders it in the target base.
type BaseConversion struct {
	Input    string
	Decimal  int64
	Result   string
	WordSize WordSize
}

// ConvertBase converts an integer literal to the requested base.
func (s *Service) ConvertBase(ctx context.Context, value, to string, wordSize int) (*BaseConversion, error) {
	w, err := resolveWordSize(wordSize)
	if err != nil {
		return nil, err
	}

	v, err := ParseInteger(value, w)
	if err != nil {
		return nil, err
	}

	out, err := FormatBase(v, Base(to), w)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		expr := fmt.Sprintf("%s -> %s", value, to)
		s.bus.PublishCalculationDone(ctx, calc.SourceProgrammer, expr, out)
	}

	return &BaseConversion{
		Input:    value,
		Decimal:  v,
		Result:   out,
		WordSize: w,
	}, nil
}

// BitwiseResult carries a bitwise result rendered in every base.
type BitwiseResult struct {
	Decimal  int64
	Hex      string
	Binary   string
	Octal    string
	WordSize WordSize
}

// Bitwise parses the operands and applies the requested bitwise operation.
func (s *Service) Bitwise(ctx context.Context, op, a, b string, wordSize int) (*BitwiseResult, error) {
	w, err := resolveWordSize(wordSize)
	if err != nil {
		return nil, err
	}

	av, err := ParseInteger(a, w)
	if err != nil {
		return nil, err
	}

	var bv int64
	if BitwiseOp(op) != OpNot {
		bv, err = ParseInteger(b, w)
		if err != nil {
			return nil, err
		}
	}

	v, err := Bitwise(BitwiseOp(op), av, bv, w)
	if err != nil {
		return nil, err
	}

	hex, _ := FormatBase(v, Hexadecimal, w)
	bin, _ := FormatBase(v, Binary, w)
	oct, _ := FormatBase(v, Octal, w)

	if s.bus != nil {
		expr := fmt.Sprintf("%s %s %s", a, op, b)
		if BitwiseOp(op) == OpNot {
			expr = fmt.Sprintf("%s %s", op, a)
		}
		s.bus.PublishCalculationDone(ctx, calc.SourceProgrammer, expr, fmt.Sprintf("%d", v))
	}

	return &BitwiseResult{
		Decimal:  v,
		Hex:      hex,
		Binary:   bin,
		Octal:    oct,
		WordSize: w,
	}, nil
}
