// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// A LogValue represents a signed real number as a sign bit and the base-10
// logarithm of its magnitude.
//
// Internal representation:
//
//	x                 neg      exp
//	-----------------------------------
//	±0                sign     -Inf
//	0 < |x| < +Inf    sign     log10(|x|)
//	±Inf              sign     +Inf
//	NaN               -        NaN
//
// LogValues are immutable and may be copied and shared freely. Note that the
// zero value LogValue{} has an exponent of 0 and therefore represents 1; use
// Zero for the number 0.
type LogValue struct {
	neg bool
	exp float64
}

// New returns the LogValue with the given sign and base-10 logarithm of its
// magnitude.
func New(neg bool, exp float64) LogValue {
	return LogValue{neg: neg, exp: exp}
}

// Signbit reports whether x is negative, negative zero or negative infinity.
func (x LogValue) Signbit() bool {
	return x.neg
}

// LogMagnitude returns log10(|x|).
func (x LogValue) LogMagnitude() float64 {
	return x.exp
}

// IsNaN reports whether x is a NaN.
func (x LogValue) IsNaN() bool {
	return math.IsNaN(x.exp)
}

// IsInf reports whether x is +Inf or -Inf.
func (x LogValue) IsInf() bool {
	return math.IsInf(x.exp, 1)
}

// IsFinite reports whether x is neither infinite nor a NaN.
func (x LogValue) IsFinite() bool {
	return !x.IsInf() && !x.IsNaN()
}

// IsZero reports whether x is +0 or -0.
func (x LogValue) IsZero() bool {
	return math.IsInf(x.exp, -1)
}

// IsSignPositive reports whether the sign bit of x is clear. It is true for +0.
func (x LogValue) IsSignPositive() bool {
	return !x.neg
}

// IsSignNegative reports whether the sign bit of x is set.
func (x LogValue) IsSignNegative() bool {
	return x.neg
}

// Sign returns:
//
//	-1 if x <   0
//	 0 if x is ±0 or NaN
//	+1 if x >   0
func (x LogValue) Sign() int {
	if x.IsZero() || x.IsNaN() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Classify returns the floating-point category of x. Finite non-zero values
// report the category of their exponent, except for ±1 (exponent 0) which is
// Normal.
func (x LogValue) Classify() Category {
	switch {
	case x.IsNaN():
		return NaNCategory
	case x.IsInf():
		return Infinite
	case x.IsZero():
		return ZeroCategory
	case x.exp != 0 && math.Abs(x.exp) < smallestNormal:
		return Subnormal
	}
	return Normal
}

// Neg returns x with its sign negated.
func (x LogValue) Neg() LogValue {
	return LogValue{neg: !x.neg, exp: x.exp}
}

// Abs returns |x|.
func (x LogValue) Abs() LogValue {
	return LogValue{exp: x.exp}
}

// Signum returns ±1 with the sign of x, or NaN if x is a NaN. Zeros and
// infinities keep their sign.
func (x LogValue) Signum() LogValue {
	if x.IsNaN() {
		return NaN
	}
	return LogValue{neg: x.neg}
}

// Recip returns 1/x. The sign is preserved.
func (x LogValue) Recip() LogValue {
	return LogValue{neg: x.neg, exp: -x.exp}
}
