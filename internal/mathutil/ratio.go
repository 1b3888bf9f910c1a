// Package mathutil provides exact integer ratio arithmetic for sample
// rate conversion.
package mathutil

import "errors"

// ErrOverflow is returned when a multiply-then-divide does not fit in
// an unsigned 32-bit result.
var ErrOverflow = errors.New("mathutil: muldiv overflow")

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, 0) is 0.
func GCD(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Simplify reduces the ratio num/den to lowest terms. Simplify(0, 0)
// returns (0, 0).
func Simplify(num, den uint32) (uint32, uint32) {
	g := GCD(num, den)
	if g == 0 {
		return num, den
	}
	return num / g, den / g
}

// MulDiv computes value * mul / div without intermediate wraparound.
// The value is split into div-sized parts so each product stays within
// 64 bits; ErrOverflow is reported when the true result exceeds the
// uint32 range. Panics if div is zero.
func MulDiv(value, mul, div uint32) (uint32, error) {
	if div == 0 {
		panic("mathutil: muldiv by zero")
	}
	major := value / div
	remainder := value % div
	const maxUint32 = ^uint32(0)
	if mul != 0 && (remainder > maxUint32/mul ||
		major > maxUint32/mul ||
		major*mul > maxUint32-remainder*mul/div) {
		return 0, ErrOverflow
	}
	return remainder*mul/div + major*mul, nil
}
