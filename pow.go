// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// Powf returns x**y.
//
// Special cases are:
//
//	Powf(±0, y)   = +0 for y > 0
//	Powf(±0, y)   = NaN for y < 0
//	Powf(±0, 0)   = 1
//	Powf(±Inf, y) = ±Inf for y > 0 (negative only if x < 0 and y is odd)
//	Powf(±Inf, y) = +0 for y < 0
//	Powf(±Inf, 0) = NaN
//	Powf(x, 0)    = 1
//	Powf(x, 1)    = x
//
// The result is negative if x is negative and y is not an even integer. A
// negative x with a non-integer y is therefore treated as -(|x|**y).
func (x LogValue) Powf(y float64) LogValue {
	if x.IsNaN() || math.IsNaN(y) {
		return NaN
	}
	odd := !math.IsInf(y, 0) && math.Mod(y, 2) != 0

	if x.IsZero() {
		switch {
		case y > 0:
			return Zero
		case y < 0:
			return NaN
		}
		return One
	}
	if x.IsInf() {
		switch {
		case y > 0:
			return LogValue{neg: x.neg && odd, exp: math.Inf(1)}
		case y < 0:
			return Zero
		}
		return NaN
	}

	switch {
	case y == 0:
		return One
	case y == 1:
		return x
	case x.exp == 0:
		// ±1**y, including y = ±Inf
		return LogValue{neg: x.neg && odd}
	}
	return LogValue{neg: x.neg && odd, exp: x.exp * y}
}

// Powi returns x**n. See Powf for special cases.
func (x LogValue) Powi(n int) LogValue {
	if x.IsNaN() {
		return NaN
	}
	odd := n%2 != 0

	if x.IsZero() {
		switch {
		case n > 0:
			return Zero
		case n < 0:
			return NaN
		}
		return One
	}
	if x.IsInf() {
		switch {
		case n > 0:
			return LogValue{neg: x.neg && odd, exp: math.Inf(1)}
		case n < 0:
			return Zero
		}
		return NaN
	}

	switch n {
	case 0:
		return One
	case 1:
		return x
	}
	return LogValue{neg: x.neg && odd, exp: x.exp * float64(n)}
}

// Pow returns x**y. Special cases are the same as for Powf; y is odd if
// y.Rem(Two) is not zero.
//
// The exponent of the result, log10(|x|)×y, is itself computed as a LogValue
// and then converted back to a float64. If it does not fit in a float64, the
// result saturates to +Inf or 0.
func (x LogValue) Pow(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	odd := !y.Rem(Two).IsZero()

	if x.IsZero() {
		switch y.Sign() {
		case 1:
			return Zero
		case -1:
			return NaN
		}
		return One
	}
	if x.IsInf() {
		switch y.Sign() {
		case 1:
			return LogValue{neg: x.neg && odd, exp: math.Inf(1)}
		case -1:
			return Zero
		}
		return NaN
	}

	switch {
	case y.IsZero():
		return One
	case y.Equal(One):
		return x
	case x.exp == 0:
		return LogValue{neg: x.neg && odd}
	}

	// a ±Inf exponent from a failed conversion gives +Inf or 0
	exp, _ := NewFloat64(x.exp).Mul(y).Float64()
	return LogValue{neg: x.neg && odd, exp: exp}
}

// Sqr returns x².
func (x LogValue) Sqr() LogValue {
	return LogValue{exp: x.exp * 2}
}

// Cube returns x³.
func (x LogValue) Cube() LogValue {
	return LogValue{neg: x.neg, exp: x.exp * 3}
}

// Sqrt returns the square root of x. It returns NaN if x is negative and ±0
// if x is ±0.
func (x LogValue) Sqrt() LogValue {
	if x.IsNaN() || x.IsZero() {
		return x
	}
	if x.neg {
		return NaN
	}
	return LogValue{exp: x.exp / 2}
}

// Cbrt returns the cube root of x.
func (x LogValue) Cbrt() LogValue {
	if x.IsNaN() {
		return NaN
	}
	return LogValue{neg: x.neg, exp: x.exp / 3}
}

// Hypot returns Sqrt(x*x + y*y).
func (x LogValue) Hypot(y LogValue) LogValue {
	return x.Sqr().Add(y.Sqr()).Sqrt()
}

// Exp returns e**x.
func (x LogValue) Exp() LogValue {
	return E.Pow(x)
}

// Exp2 returns 2**x.
func (x LogValue) Exp2() LogValue {
	return Two.Pow(x)
}

// Log10 returns the decimal logarithm of x. It returns NaN if x < 0.
func (x LogValue) Log10() LogValue {
	if x.neg && !x.IsZero() {
		return NaN
	}
	return x.AbsLog10()
}

// AbsLog10 returns the decimal logarithm of |x|. Since the exponent of x is
// log10(|x|), this is the exponent itself, as a LogValue.
func (x LogValue) AbsLog10() LogValue {
	return NewFloat64(x.exp)
}

// Log2 returns the binary logarithm of x. It returns NaN if x < 0.
func (x LogValue) Log2() LogValue {
	if x.neg && !x.IsZero() {
		return NaN
	}
	return x.AbsLog2()
}

// AbsLog2 returns the binary logarithm of |x|.
func (x LogValue) AbsLog2() LogValue {
	return NewFloat64(x.exp * (math.Ln10 / math.Ln2))
}

// Ln returns the natural logarithm of x. It returns NaN if x < 0.
func (x LogValue) Ln() LogValue {
	if x.neg && !x.IsZero() {
		return NaN
	}
	return x.AbsLn()
}

// AbsLn returns the natural logarithm of |x|.
func (x LogValue) AbsLn() LogValue {
	return NewFloat64(x.exp * math.Ln10)
}

// Log returns the logarithm of x in the given base. It returns NaN if x < 0.
func (x LogValue) Log(base float64) LogValue {
	if x.neg && !x.IsZero() {
		return NaN
	}
	return x.AbsLog(base)
}

// AbsLog returns the logarithm of |x| in the given base.
func (x LogValue) AbsLog(base float64) LogValue {
	return NewFloat64(x.exp / math.Log10(base))
}
