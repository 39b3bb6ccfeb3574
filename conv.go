// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions from and to native numbers, and parsing.

package lognum

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// NewFloat64 returns the LogValue for f. ±0, ±Inf and NaN map to the
// corresponding special values.
func NewFloat64(f float64) LogValue {
	return LogValue{neg: math.Signbit(f), exp: math.Log10(math.Abs(f))}
}

// NewFloat32 returns the LogValue for f.
func NewFloat32(f float32) LogValue {
	return NewFloat64(float64(f))
}

// From returns the LogValue for any native integer or floating-point value.
// Integers above 2**53 in magnitude are rounded to the nearest float64 first.
func From[T constraints.Integer | constraints.Float](v T) LogValue {
	return NewFloat64(float64(v))
}

// Float64 returns the float64 value nearest to x. If x is too large to be
// represented by a float64 (|x| > math.MaxFloat64), the result is ±Inf and
// ok is false. Values too small for a float64 underflow to ±0.
func (x LogValue) Float64() (f float64, ok bool) {
	if x.exp > MaxLogMagnitude {
		return math.Inf(x.sign()), false
	}
	f = pow10(x.exp)
	if x.neg {
		f = -f
	}
	return f, true
}

// Float32 is like Float64 for float32 values.
func (x LogValue) Float32() (f float32, ok bool) {
	f64, ok := x.Float64()
	f = float32(f64)
	if ok && math.IsInf(float64(f), 0) {
		ok = false
	}
	return f, ok
}

// sign returns -1 if x.neg is set, +1 otherwise. Suitable for math.Inf.
func (x LogValue) sign() int {
	if x.neg {
		return -1
	}
	return 1
}

// MustParse is like Parse but panics if s cannot be parsed. It simplifies
// initialization of global variables.
func MustParse(s string) LogValue {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// Parse parses s which must contain a text representation of a number in one
// of the following forms, or a string representing an infinite value or a
// NaN:
//
//	number      = [ sign ] ( decimal | scientific | logarithmic ) .
//	sign        = "+" | "-" .
//	decimal     = float .
//	scientific  = float ( "e" | "E" ) exponent .
//	logarithmic = ( "e" | "E" ) exponent .
//	exponent    = float .
//
// where float is any floating-point literal accepted by strconv.ParseFloat,
// except that a decimal or the coefficient of a scientific number cannot carry
// a second sign ("--1" and "+-1e5" are errors).
// The exponent of a logarithmic or scientific number can itself be in
// scientific notation, which permits double exponentials such as "e1e200"
// (10**10**200) or "3e1.2e45". Infinities are "inf" and "infinity", optionally
// signed, and NaN is "nan"; they are matched case-insensitively.
//
// A component that overflows a float64 yields the corresponding infinity
// rather than an error.
func Parse(s string) (LogValue, error) {
	if s == "" {
		return NaN, &ParseError{Input: s, Err: ErrEmpty}
	}

	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return Inf, nil
	case "-inf", "-infinity":
		return NegInf, nil
	case "nan":
		return NaN, nil
	}

	neg := false
	body := s
	switch c := s[0]; {
	case c == '-':
		neg = true
		body = s[1:]
	case c == '+':
		body = s[1:]
	case '0' <= c && c <= '9' || c == 'e' || c == 'E':
		// ok
	default:
		return NaN, &ParseError{Input: s, Err: ErrLeadingChar}
	}
	if body != "" && (body[0] == '+' || body[0] == '-') {
		return NaN, &ParseError{Input: s, Err: ErrLeadingChar}
	}

	i := strings.IndexAny(body, "eE")
	if i < 0 {
		// decimal, like "123.456"
		f, err := parseFloat(s)
		if err != nil {
			return NaN, &ParseError{Input: s, Part: "value", Err: err}
		}
		return LogValue{neg: neg, exp: math.Log10(math.Abs(f))}, nil
	}

	mant, exp := body[:i], body[i+1:]
	e, err := parseFloat(exp)
	if err != nil {
		return NaN, &ParseError{Input: s, Part: "exponent", Err: err}
	}
	if mant == "" {
		// logarithmic, like "e1234" or "e-1e200"
		return LogValue{neg: neg, exp: e}, nil
	}

	// scientific, like "1.23e456"
	m, err := parseFloat(mant)
	if err != nil {
		return NaN, &ParseError{Input: s, Part: "coefficient", Err: err}
	}
	// log10(m × 10**e) = log10(m) + e
	return LogValue{neg: neg, exp: math.Log10(math.Abs(m)) + e}, nil
}

// parseFloat is strconv.ParseFloat, except that values out of range are not
// an error. Errors are unwrapped from their *strconv.NumError since the
// ParseError returned by Parse already records the input.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		if ne.Err == strconv.ErrRange {
			return f, nil
		}
		return f, ne.Err
	}
	return f, err
}
