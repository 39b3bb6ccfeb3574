// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// Trigonometric and hyperbolic functions return float64 values since their
// results are bounded. Periodic functions reduce x modulo 2π first, so they
// accept any finite x; beyond 15 orders of magnitude above 2π the reduced
// phase is 0. The others convert x to a float64 and return NaN if x does not
// fit.

// phase returns x mod 2π as a float64, or NaN if x is infinite.
func (x LogValue) phase() float64 {
	if x.IsInf() {
		return math.NaN()
	}
	return x.Rem(Tau).float64OrNaN()
}

func (x LogValue) float64OrNaN() float64 {
	f, ok := x.Float64()
	if !ok {
		return math.NaN()
	}
	return f
}

// Sin returns the sine of the radian argument x.
func (x LogValue) Sin() float64 {
	return math.Sin(x.phase())
}

// Cos returns the cosine of the radian argument x.
func (x LogValue) Cos() float64 {
	return math.Cos(x.phase())
}

// SinCos returns Sin(x), Cos(x).
func (x LogValue) SinCos() (sin, cos float64) {
	return math.Sincos(x.phase())
}

// Tan returns the tangent of the radian argument x.
func (x LogValue) Tan() float64 {
	return math.Tan(x.phase())
}

// Asin returns the arcsine, in radians, of x.
func (x LogValue) Asin() float64 {
	return math.Asin(x.float64OrNaN())
}

// Acos returns the arccosine, in radians, of x.
func (x LogValue) Acos() float64 {
	return math.Acos(x.float64OrNaN())
}

// Atan returns the arctangent, in radians, of x.
func (x LogValue) Atan() float64 {
	return math.Atan(x.float64OrNaN())
}

// Atan2 returns the arc tangent of x/y, using the signs of the two to
// determine the quadrant of the return value.
func (x LogValue) Atan2(y LogValue) float64 {
	return math.Atan2(x.float64OrNaN(), y.float64OrNaN())
}

// Sinh returns the hyperbolic sine of x.
func (x LogValue) Sinh() float64 {
	return math.Sinh(x.float64OrNaN())
}

// Cosh returns the hyperbolic cosine of x.
func (x LogValue) Cosh() float64 {
	return math.Cosh(x.float64OrNaN())
}

// Tanh returns the hyperbolic tangent of x.
func (x LogValue) Tanh() float64 {
	return math.Tanh(x.float64OrNaN())
}

// Asinh returns the inverse hyperbolic sine of x.
func (x LogValue) Asinh() float64 {
	return math.Asinh(x.float64OrNaN())
}

// Acosh returns the inverse hyperbolic cosine of x.
func (x LogValue) Acosh() float64 {
	return math.Acosh(x.float64OrNaN())
}

// Atanh returns the inverse hyperbolic tangent of x.
func (x LogValue) Atanh() float64 {
	return math.Atanh(x.float64OrNaN())
}

// Sinc returns sin(x)/x.
func (x LogValue) Sinc() float64 {
	f := x.float64OrNaN()
	return math.Sin(f) / f
}

// Cosc returns cos(x)/x.
func (x LogValue) Cosc() float64 {
	f := x.float64OrNaN()
	return math.Cos(f) / f
}

// Tanc returns tan(x)/x.
func (x LogValue) Tanc() float64 {
	f := x.float64OrNaN()
	return math.Tan(f) / f
}
