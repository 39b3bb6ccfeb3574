// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// Add returns the sum x+y.
//
// When the magnitudes of x and y differ by more than 20 orders of magnitude,
// the smaller operand is ignored. Adding infinities with opposite signs
// produces a NaN.
func (x LogValue) Add(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}

	if x.IsInf() || y.IsInf() {
		if x.IsInf() && y.IsInf() && x.neg != y.neg {
			return NaN
		}
		if x.IsInf() {
			return x
		}
		return y
	}

	if x.neg != y.neg {
		// x + y == x - (-y)
		return x.Sub(y.Neg())
	}

	// |a| >= |b|
	a, b := x, y
	if a.exp < b.exp {
		a, b = b, a
	}
	if b.IsZero() || a.exp-b.exp > negligibleDigits {
		return a
	}

	// log10(10**a + 10**b) = a + log10(1 + 10**(b-a))
	return LogValue{
		neg: a.neg,
		exp: a.exp + math.Log1p(pow10(b.exp-a.exp))*math.Log10E,
	}
}

// Sub returns the difference x-y.
//
// Subtracting infinities with equal signs produces a NaN.
func (x LogValue) Sub(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}

	if x.IsInf() || y.IsInf() {
		if x.IsInf() && y.IsInf() && x.neg == y.neg {
			return NaN
		}
		if x.IsInf() {
			return x
		}
		// finite - ±Inf = ∓Inf
		return y.Neg()
	}

	if x.neg != y.neg {
		// x - y == x + (-y)
		return x.Add(y.Neg())
	}

	switch {
	case x.exp == y.exp:
		// x - x, including ±0 - ±0
		return Zero
	case x.IsZero():
		return y.Neg()
	case y.IsZero():
		return x
	case x.exp-y.exp > negligibleDigits:
		return x
	case y.exp-x.exp > negligibleDigits:
		return y.Neg()
	}

	// log10(|10**a - 10**b|) = b + log10(|10**(a-b) - 1|)
	// 10**(a-b) - 1 is computed with Expm1 since a-b may be close to 0.
	d := x.exp - y.exp
	return LogValue{
		neg: xor(x.neg, x.exp < y.exp),
		exp: y.exp + math.Log10(math.Abs(math.Expm1(d*math.Ln10))),
	}
}

// Mul returns the product x×y.
//
// Unlike IEEE-754, the product of an infinity by anything but a NaN is an
// infinity, including when the other operand is zero.
func (x LogValue) Mul(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	neg := xor(x.neg, y.neg)
	if x.IsInf() || y.IsInf() {
		return LogValue{neg: neg, exp: math.Inf(1)}
	}
	return LogValue{neg: neg, exp: x.exp + y.exp}
}

// Quo returns the quotient x/y.
//
// Dividing an infinity by an infinity, or zero by zero, produces a NaN. Any
// finite value divided by an infinity is +0.
func (x LogValue) Quo(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	neg := xor(x.neg, y.neg)
	if x.IsInf() || y.IsInf() {
		if x.IsInf() && y.IsInf() {
			return NaN
		}
		if x.IsInf() {
			return LogValue{neg: neg, exp: math.Inf(1)}
		}
		return Zero
	}
	// 0/0 yields -Inf - -Inf = NaN
	return LogValue{neg: neg, exp: x.exp - y.exp}
}

// Rem returns the remainder of x/y. The sign of a non-zero result is the
// product of the signs of x and y.
//
// If |x| < |y|, the result is x. If |x| == |y| or |x| exceeds |y| by 15 orders
// of magnitude or more, the remainder cannot be represented and the result is
// zero with the sign of x.
func (x LogValue) Rem(y LogValue) LogValue {
	if x.IsNaN() || y.IsNaN() {
		return NaN
	}
	if x.IsInf() && y.IsInf() {
		return LogValue{neg: xor(x.neg, y.neg), exp: math.Inf(-1)}
	}

	d := x.exp - y.exp
	switch {
	case d < 0:
		return x
	case d >= remDigits || d == 0:
		return LogValue{neg: x.neg, exp: math.Inf(-1)}
	}

	// |x|/|y| = 10**d, 0 < d < 15
	q := pow10(d)
	// d carries the rounding errors of both exponents, so an exact multiple
	// like 8/2 may come out as 3.9999999999999996.
	if r := math.Round(q); math.Abs(q-r) <= q*remTolerance(x.exp, y.exp) {
		q = r
	}
	f := q - math.Floor(q)
	if f == 0 {
		return LogValue{neg: x.neg, exp: math.Inf(-1)}
	}
	return LogValue{neg: xor(x.neg, y.neg), exp: y.exp + math.Log10(f)}
}

// remTolerance returns the relative error of 10**(a-b) due to the rounding of
// the exponents a and b.
func remTolerance(a, b float64) float64 {
	e := math.Max(math.Abs(a), math.Abs(b))
	ulp := math.Nextafter(e, math.Inf(1)) - e
	return math.Ln10*4*ulp + 4*epsilon
}

// AddFloat64 returns x+f.
func (x LogValue) AddFloat64(f float64) LogValue {
	return x.Add(NewFloat64(f))
}

// SubFloat64 returns x-f.
func (x LogValue) SubFloat64(f float64) LogValue {
	return x.Sub(NewFloat64(f))
}

// MulFloat64 returns x×f.
func (x LogValue) MulFloat64(f float64) LogValue {
	return x.Mul(NewFloat64(f))
}

// QuoFloat64 returns x/f.
func (x LogValue) QuoFloat64(f float64) LogValue {
	return x.Quo(NewFloat64(f))
}

// RemFloat64 returns the remainder of x/f.
func (x LogValue) RemFloat64(f float64) LogValue {
	return x.Rem(NewFloat64(f))
}
