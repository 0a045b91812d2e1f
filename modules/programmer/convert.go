// Package programmer provides base conversions and bitwise operations under
// a fixed word size with two's complement semantics.
package programmer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/modular-calculator-demo/domain/calc"
)

// WordSize is the active register width in bits.
type WordSize int

// Supported word sizes.
const (
	Word8  WordSize = 8
	Word16 WordSize = 16
	Word32 WordSize = 32
	Word64 WordSize = 64
)

// Valid reports whether the word size is one of the supported widths.
func (w WordSize) Valid() bool {
	switch w {
	case Word8, Word16, Word32, Word64:
		return true
	}
	return false
}

// Base identifies a numeral base for conversions.
type Base string

const (
	Binary      Base = "bin"
	Octal       Base = "oct"
	Decimal     Base = "dec"
	Hexadecimal Base = "hex"
)

// BitwiseOp identifies a bitwise operation.
type BitwiseOp string

const (
	OpAnd BitwiseOp = "and"
	OpOr  BitwiseOp = "or"
	OpXor BitwiseOp = "xor"
	OpNot BitwiseOp = "not"
	OpShl BitwiseOp = "shl"
	OpShr BitwiseOp = "shr"
)

// truncate masks v to the word size and sign-extends the top bit.
func (w WordSize) truncate(v int64) int64 {
	if w == Word64 {
		return v
	}
	bits := uint(w)
	mask := (uint64(1) << bits) - 1
	u := uint64(v) & mask
	// Sign-extend when the high bit of the word is set.
	if u&(uint64(1)<<(bits-1)) != 0 {
		u |= ^mask
	}
	return int64(u)
}

// unsigned returns the two's complement bit pattern of v within the word.
func (w WordSize) unsigned(v int64) uint64 {
	if w == Word64 {
		return uint64(v)
	}
	mask := (uint64(1) << uint(w)) - 1
	return uint64(v) & mask
}

// ParseInteger parses an integer, auto-detecting its base:
// 0x/0X prefixes hex, 0b/0B binary, 0o/0O octal, bare digits decimal.
// Bare strings containing hex letters (e.g. "FF") are treated as hex.
// The parsed value is truncated to the word size.
func ParseInteger(raw string, w WordSize) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, calc.NewParseError("empty integer input")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, s = 16, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, s = 2, s[2:]
	case strings.HasPrefix(s, "0o") || strings.HasPrefix(s, "0O"):
		base, s = 8, s[2:]
	case strings.ContainsAny(s, "abcdefABCDEF"):
		base = 16
	}

	u, err := strconv.ParseUint(strings.ReplaceAll(s, " ", ""), base, 64)
	if err != nil {
		return 0, calc.NewParseError(fmt.Sprintf("invalid integer %q", raw))
	}

	v := int64(u)
	if neg {
		v = -v
	}
	return w.truncate(v), nil
}

// FormatBase renders v in the target base. Hex and octal use the unsigned
// two's complement pattern; binary is zero-padded to the word size.
func FormatBase(v int64, base Base, w WordSize) (string, error) {
	switch base {
	case Decimal:
		return strconv.FormatInt(v, 10), nil
	case Hexadecimal:
		return strings.ToUpper(strconv.FormatUint(w.unsigned(v), 16)), nil
	case Octal:
		return strconv.FormatUint(w.unsigned(v), 8), nil
	case Binary:
		s := strconv.FormatUint(w.unsigned(v), 2)
		if len(s) < int(w) {
			s = strings.Repeat("0", int(w)-len(s)) + s
		}
		return s, nil
	default:
		return "", calc.NewParseError(fmt.Sprintf("unknown base %q", base))
	}
}

// Bitwise applies op to a and b (b is ignored for NOT) within the word size.
// For shifts b is the shift count and must be non-negative.
func Bitwise(op BitwiseOp, a, b int64, w WordSize) (int64, error) {
	switch op {
	case OpAnd:
		return w.truncate(a & b), nil
	case OpOr:
		return w.truncate(a | b), nil
	case OpXor:
		return w.truncate(a ^ b), nil
	case OpNot:
		return w.truncate(^a), nil
	case OpShl, OpShr:
		if b < 0 || b >= int64(w) {
			return 0, calc.NewDomainError(fmt.Sprintf("shift count must be in 0..%d", int(w)-1))
		}
		if op == OpShl {
			return w.truncate(a << uint(b)), nil
		}
		// Logical right shift on the two's complement pattern.
		return w.truncate(int64(w.unsigned(a) >> uint(b))), nil
	default:
		return 0, calc.NewParseError(fmt.Sprintf("unknown bitwise operation %q", op))
	}
}
