// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lognum implements signed real numbers of astronomically large or small
magnitude, represented by the base-10 logarithm of their magnitude.

A LogValue stores a sign bit and exp = log10(|x|) as a float64. It can
therefore represent any value up to 10**(1.8e308) in magnitude, at the cost of
relative precision: about 15 significant decimal digits of the exponent, so
the larger the value, the fewer significant digits of the value itself.
Multiplication, division, powers and roots are simple exponent arithmetic.
Addition and subtraction are computed with log1p and expm1; when the
magnitudes of the operands differ by more than 20 orders of magnitude, the
smaller one is ignored.

Zeros, infinities and NaNs are encoded in the exponent:

	x       exp
	±0      -Inf
	±Inf    +Inf
	NaN     NaN

The zero value for a LogValue has an exponent of 0 and represents the number
1. Use the Zero constant, or NewFloat64(0), for zero. New values are usually
created with one of:

	func NewFloat64(f float64) LogValue
	func From[T constraints.Integer | constraints.Float](v T) LogValue
	func Parse(s string) (LogValue, error)
	func New(neg bool, exp float64) LogValue

LogValues are immutable values; all operations take their operands by value
and return a new LogValue:

	func (x LogValue) Unary() LogValue            // z = unary x
	func (x LogValue) Binary(y LogValue) LogValue // z = x binary y
	func (x LogValue) Pred() P                    // p = pred(x)

For instance, the hypotenuse of a triangle is computed as

	h := a.Mul(a).Add(b.Mul(b)).Sqrt()

Operations never fail. Invalid operations, like subtracting infinities of the
same sign, return NaN, which then propagates. Package
github.com/db47h/lognum/context provides a wrapper that records where a NaN
first appeared.

Comparison is a partial order: NaNs are not comparable to anything, infinities
of the same sign are not comparable to each other, and -0 < +0. Cmp reports
whether its operands are comparable.

Values can be printed in plain decimal ("1234.50"), scientific ("1.23e456") or
logarithmic ("e456.090") notation, with a double exponential form for
exponents of 1e9 and above ("1e1.00e200", "e1.000e200"). LogValue implements
fmt.Formatter, fmt.Stringer, fmt.Scanner, encoding.TextMarshaler and
encoding.TextUnmarshaler.

Package github.com/db47h/lognum/math provides elementary functions that do
not fit as methods (Expm1, Gamma, Factorial, Sum...), and
github.com/db47h/lognum/interop converts to and from math/big, shopspring
decimals, robaho fixed-point and holiman uint256 values.
*/
package lognum
