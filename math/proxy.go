// Package math provides mathematical functions built on LogValue arithmetic:
// exponentials and logarithms, the gamma function and its relatives, and
// aggregates over slices of values.
//
// Functions never panic. Invalid operations return NaN, as the methods of
// LogValue do.
package math

import "github.com/db47h/lognum"

// FMA returns x * y + u. Unlike its float64 counterpart, the multiplication
// is exact in the exponent, so there is only one rounding in the addition.
//
// This function is a proxy for x.Mul(y).Add(u).
func FMA(x, y, u lognum.LogValue) lognum.LogValue {
	return x.Mul(y).Add(u)
}

// Sqrt returns the square root of x. It returns NaN if x < 0.
//
// This function is a proxy for x.Sqrt().
func Sqrt(x lognum.LogValue) lognum.LogValue {
	return x.Sqrt()
}

// Pow returns x**y.
//
// This function is a proxy for x.Pow(y).
func Pow(x, y lognum.LogValue) lognum.LogValue {
	return x.Pow(y)
}

// Hypot returns Sqrt(x*x + y*y).
//
// This function is a proxy for x.Hypot(y).
func Hypot(x, y lognum.LogValue) lognum.LogValue {
	return x.Hypot(y)
}
