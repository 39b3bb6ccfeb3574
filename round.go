// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// Values with an exponent above 300 are integers as far as float64 precision
// goes: the rounding functions return them unchanged, and Fract returns zero.

const epsilon = 0x1p-52

// float64Int converts x to a float64, snapping the result to the nearest
// integer if it is within the error of the conversion. Without this, a value
// like 3, stored as log10(3), may come back as 2.9999999999999996 and round
// down to 2.
func (x LogValue) float64Int() float64 {
	f, _ := x.Float64()
	if x.IsZero() || !x.IsFinite() {
		return f
	}
	r := math.Round(f)
	e := math.Abs(x.exp)
	ulp := math.Nextafter(e, math.Inf(1)) - e
	if math.Abs(f-r) <= math.Abs(f)*(3*ulp+4*epsilon) {
		return r
	}
	return f
}

// roundf applies the float64 rounding function fn to x.
func (x LogValue) roundf(fn func(float64) float64) LogValue {
	if x.exp > roundingLimit {
		return x
	}
	return NewFloat64(fn(x.float64Int()))
}

// Floor returns the greatest integer value less than or equal to x.
func (x LogValue) Floor() LogValue {
	return x.roundf(math.Floor)
}

// Ceil returns the least integer value greater than or equal to x.
func (x LogValue) Ceil() LogValue {
	return x.roundf(math.Ceil)
}

// Round returns the nearest integer, rounding half away from zero.
func (x LogValue) Round() LogValue {
	return x.roundf(math.Round)
}

// Trunc returns the integer value of x.
func (x LogValue) Trunc() LogValue {
	return x.roundf(math.Trunc)
}

// Fract returns the fractional part of x, with the same sign as x.
func (x LogValue) Fract() LogValue {
	if x.exp > roundingLimit {
		return Zero
	}
	_, frac := math.Modf(x.float64Int())
	return NewFloat64(frac)
}
