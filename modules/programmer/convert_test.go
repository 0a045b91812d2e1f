package programmer

import (
	"testing"

	"github.com/example/modular-calculator-demo/domain/calc"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		raw  string
		word WordSize
		want int64
	}{
		{"255", Word32, 255},
		{"0xFF", Word32, 255},
		{"0XFF", Word32, 255},
		{"FF", Word32, 255},
		{"ff", Word32, 255},
		{"0b1010", Word32, 10},
		{"0o17", Word32, 15},
		{"-16", Word32, -16},
		{"  42  ", Word32, 42},
		// 0xFF does not fit a signed 8-bit word; it wraps to -1.
		{"0xFF", Word8, -1},
		{"0x80", Word8, -128},
		{"0x7F", Word8, 127},
		{"0x10000", Word16, 0},
	}

	for _, tc := range tests {
		got, err := ParseInteger(tc.raw, tc.word)
		if err != nil {
			t.Errorf("ParseInteger(%q, %d) error = %v", tc.raw, tc.word, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseInteger(%q, %d) = %d, want %d", tc.raw, tc.word, got, tc.want)
		}
	}
}

func TestParseInteger_Invalid(t *testing.T) {
	for _, raw := range []string{"", "zz", "0b102", "12.5", "0x"} {
		if _, err := ParseInteger(raw, Word32); err == nil {
			t.Errorf("ParseInteger(%q) should fail", raw)
		} else if !calc.IsUserError(err) {
			t.Errorf("ParseInteger(%q) error should be a user error, got %v", raw, err)
		}
	}
}

func TestFormatBase(t *testing.T) {
	tests := []struct {
		v    int64
		base Base
		word WordSize
		want string
	}{
		{255, Decimal, Word32, "255"},
		{255, Hexadecimal, Word32, "FF"},
		{8, Octal, Word32, "10"},
		{5, Binary, Word8, "00000101"},
		{-1, Decimal, Word8, "-1"},
		{-1, Hexadecimal, Word8, "FF"},
		{-1, Hexadecimal, Word16, "FFFF"},
		{-1, Binary, Word8, "11111111"},
		{0, Binary, Word8, "00000000"},
	}

	for _, tc := range tests {
		got, err := FormatBase(tc.v, tc.base, tc.word)
		if err != nil {
			t.Errorf("FormatBase(%d, %s, %d) error = %v", tc.v, tc.base, tc.word, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatBase(%d, %s, %d) = %q, want %q", tc.v, tc.base, tc.word, got, tc.want)
		}
	}

	if _, err := FormatBase(1, Base("ternary"), Word32); err == nil {
		t.Error("FormatBase should reject unknown bases")
	}
}

func TestBitwise(t *testing.T) {
	tests := []struct {
		op   BitwiseOp
		a, b int64
		word WordSize
		want int64
	}{
		{OpAnd, 0b1100, 0b1010, Word32, 0b1000},
		{OpOr, 0b1100, 0b1010, Word32, 0b1110},
		{OpXor, 0b1100, 0b1010, Word32, 0b0110},
		{OpNot, 0, 0, Word8, -1},
		{OpShl, 1, 4, Word32, 16},
		// Left shift wraps within the word.
		{OpShl, 0x40, 1, Word8, -128},
		// Right shift is logical on the two's complement pattern.
		{OpShr, -1, 4, Word8, 15},
		{OpShr, 16, 4, Word32, 1},
	}

	for _, tc := range tests {
		got, err := Bitwise(tc.op, tc.a, tc.b, tc.word)
		if err != nil {
			t.Errorf("Bitwise(%s, %d, %d, %d) error = %v", tc.op, tc.a, tc.b, tc.word, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Bitwise(%s, %d, %d, %d) = %d, want %d", tc.op, tc.a, tc.b, tc.word, got, tc.want)
		}
	}
}

func TestBitwise_ShiftCountValidation(t *testing.T) {
	if _, err := Bitwise(OpShl, 1, 8, Word8); err == nil {
		t.Error("shift count equal to word size should fail")
	}
	if _, err := Bitwise(OpShr, 1, -1, Word32); err == nil {
		t.Error("negative shift count should fail")
	}
	if _, err := Bitwise(BitwiseOp("nand"), 1, 1, Word32); err == nil {
		t.Error("unknown operation should fail")
	}
}

func TestResolveWordSize(t *testing.T) {
	w, err := resolveWordSize(0)
	if err != nil {
		t.Fatalf("resolveWordSize(0) error = %v", err)
	}
	if w != DefaultWordSize {
		t.Errorf("resolveWordSize(0) = %d, want default %d", w, DefaultWordSize)
	}

	for _, n := range []int{8, 16, 32, 64} {
		if _, err := resolveWordSize(n); err != nil {
			t.Errorf("resolveWordSize(%d) error = %v", n, err)
		}
	}

	if _, err := resolveWordSize(12); err == nil {
		t.Error("resolveWordSize(12) should fail")
	}
}
