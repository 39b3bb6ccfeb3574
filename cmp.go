// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

// Cmp compares x and y and returns:
//
//	-1, true if x <  y
//	 0, true if x == y
//	+1, true if x >  y
//	 0, false if x and y are not comparable
//
// NaNs are not comparable to anything, including themselves. Infinities of
// the same sign are not comparable to each other. Unlike IEEE-754 floats, -0
// compares less than +0.
func (x LogValue) Cmp(y LogValue) (r int, ok bool) {
	if x.IsNaN() || y.IsNaN() {
		return 0, false
	}
	if x.IsInf() && y.IsInf() && x.neg == y.neg {
		return 0, false
	}

	switch {
	case x.neg && !y.neg:
		return -1, true
	case !x.neg && y.neg:
		return +1, true
	}
	// x.neg == y.neg

	switch {
	case x.exp > y.exp:
		r = 1
	case x.exp < y.exp:
		r = -1
	}
	if x.neg {
		r = -r
	}
	return r, true
}

// Less reports whether x < y.
func (x LogValue) Less(y LogValue) bool {
	r, ok := x.Cmp(y)
	return ok && r < 0
}

// LessEq reports whether x <= y.
func (x LogValue) LessEq(y LogValue) bool {
	r, ok := x.Cmp(y)
	return ok && r <= 0
}

// Greater reports whether x > y.
func (x LogValue) Greater(y LogValue) bool {
	r, ok := x.Cmp(y)
	return ok && r > 0
}

// GreaterEq reports whether x >= y.
func (x LogValue) GreaterEq(y LogValue) bool {
	r, ok := x.Cmp(y)
	return ok && r >= 0
}

// Equal reports whether x and y have the same sign and exponent. It returns
// false if either is a NaN.
func (x LogValue) Equal(y LogValue) bool {
	return x.neg == y.neg && x.exp == y.exp
}

// Order returns x and y sorted in ascending order. If x and y are not
// comparable, they are returned as (y, x).
func (x LogValue) Order(y LogValue) (lo, hi LogValue) {
	if x.Less(y) {
		return x, y
	}
	return y, x
}

// Min returns the smaller of x and y. See Order.
func (x LogValue) Min(y LogValue) LogValue {
	lo, _ := x.Order(y)
	return lo
}

// Max returns the larger of x and y. See Order.
func (x LogValue) Max(y LogValue) LogValue {
	_, hi := x.Order(y)
	return hi
}

// Clamp restricts x to the interval [min, max]. It returns false if x is a
// NaN.
func (x LogValue) Clamp(min, max LogValue) (LogValue, bool) {
	if x.IsNaN() {
		return NaN, false
	}
	if x.Less(min) {
		return min, true
	}
	if x.Greater(max) {
		return max, true
	}
	return x, true
}

// AlmostEqual reports whether |x - y| < tolerance.
func (x LogValue) AlmostEqual(y, tolerance LogValue) bool {
	return x.Sub(y).Abs().Less(tolerance)
}
