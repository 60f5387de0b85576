package types

import (
	"math/big"
)

// IntValue is an arbitrary-precision integer value carrying the
// signedness and bit width of the host type it was evaluated from.
// The bound+length overflow check adds values of differing signedness,
// which requires sign-extending both operands to a common width before
// the addition; big.Int keeps the arithmetic exact at any width.
type IntValue struct {
	value  *big.Int
	width  uint
	signed bool
}

// NewIntValue creates a signed value of the given bit width.
func NewIntValue(v int64, width uint) IntValue {
	return IntValue{value: big.NewInt(v), width: width, signed: true}
}

// NewUintValue creates an unsigned value of the given bit width.
func NewUintValue(v uint64, width uint) IntValue {
	return IntValue{value: new(big.Int).SetUint64(v), width: width, signed: false}
}

// NewIntValueFromBig creates a value from an exact big integer.
func NewIntValueFromBig(v *big.Int, width uint, signed bool) IntValue {
	return IntValue{value: new(big.Int).Set(v), width: width, signed: signed}
}

// Big returns a copy of the exact integer value.
func (v IntValue) Big() *big.Int {
	return new(big.Int).Set(v.value)
}

// Width returns the bit width of the originating type.
func (v IntValue) Width() uint { return v.width }

// Signed reports whether the originating type was signed.
func (v IntValue) Signed() bool { return v.signed }

// IsNegative reports whether the value is negative.
func (v IntValue) IsNegative() bool {
	return v.value.Sign() < 0
}

// Cmp compares two values by their exact integer value, which is the
// result of comparing both operands after sign extension to a common
// width. Returns -1, 0, or +1.
func (v IntValue) Cmp(other IntValue) int {
	return v.value.Cmp(other.value)
}

// Add returns the exact sum of two values. When the operands differ in
// signedness the result is signed and one bit wider than the wider
// operand, so the sum can never wrap.
func (v IntValue) Add(other IntValue) IntValue {
	sum := new(big.Int).Add(v.value, other.value)

	if v.signed == other.signed {
		width := v.width
		if other.width > width {
			width = other.width
		}

		return IntValue{value: sum, width: width, signed: v.signed}
	}

	width := v.width
	if other.width > width {
		width = other.width
	}

	return IntValue{value: sum, width: width + 1, signed: true}
}

// Neg returns the arithmetic negation as a signed value.
func (v IntValue) Neg() IntValue {
	width := v.width
	if !v.signed {
		width++
	}

	return IntValue{value: new(big.Int).Neg(v.value), width: width, signed: true}
}

// String returns the decimal representation, as used in diagnostics.
func (v IntValue) String() string {
	return v.value.String()
}
