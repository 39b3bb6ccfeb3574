// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for LogValues.
//
// A Context catches NaN errors: if an operation generates a NaN from operands
// that are not NaNs, for example Inf - Inf or 0/0, the operation returns NaN
// and the context records an error. Further operations with the context will
// be no-ops (they simply return NaN) until (*Context).Err is called to check
// for errors.
//
// Although it does not exactly provide IEEE-754 NaNs, it provides a form of
// support for quiet NaNs: a sequence of calculations can be written without
// checking every intermediate result, and the first invalid operation is
// reported at the end.
//
// A Context also carries display settings, a precision and a Notation, used
// by (*Context).Text.
package context

import (
	"fmt"
	"strings"

	"github.com/db47h/lognum"
)

const handleNaNs = true

// A Notation selects the text format used by (*Context).Text.
type Notation byte

// Notations.
const (
	Auto        Notation = iota // scientific or logarithmic depending on magnitude, like LogValue.String
	Fixed                       // fixed-point, scientific when out of float64 range
	Scientific                  // 1.23e456
	Logarithmic                 // e456.090
)

var notationNames = [...]string{
	Auto:        "auto",
	Fixed:       "fixed",
	Scientific:  "scientific",
	Logarithmic: "logarithmic",
}

func (n Notation) String() string {
	if int(n) < len(notationNames) {
		return notationNames[n]
	}
	return fmt.Sprintf("Notation(%d)", n)
}

// format returns the format byte for LogValue.Text.
func (n Notation) format() byte {
	switch n {
	case Fixed:
		return 'f'
	case Scientific:
		return 'e'
	case Logarithmic:
		return 'l'
	}
	return 'g'
}

// ParseNotation returns the Notation named s. Names are case insensitive and
// may be abbreviated to their first letter ("s" for scientific) or to "log"
// and "sci".
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(s) {
	case "", "a", "auto":
		return Auto, nil
	case "f", "fixed":
		return Fixed, nil
	case "s", "sci", "scientific":
		return Scientific, nil
	case "l", "log", "logarithmic":
		return Logarithmic, nil
	}
	return Auto, fmt.Errorf("unknown notation %q", s)
}

// A Context is a wrapper around LogValue operations that facilitates
// management of display settings and error handling.
type Context struct {
	prec     int
	notation Notation
	err      error
}

// New creates a new context with the given display precision and notation.
// A negative precision selects the default precision of the notation (see
// LogValue.Text).
func New(prec int, notation Notation) *Context {
	return new(Context).SetNotation(notation).SetPrec(prec)
}

// Notation returns the display notation of c.
func (c *Context) Notation() Notation {
	return c.notation
}

// Prec returns the display precision of c.
func (c *Context) Prec() int {
	return c.prec
}

// SetNotation sets c's display notation to n and returns c.
func (c *Context) SetNotation(n Notation) *Context {
	c.notation = n
	return c
}

// SetPrec sets c's display precision to prec and returns c. Any negative
// value is stored as -1.
func (c *Context) SetPrec(prec int) *Context {
	if prec < 0 {
		prec = -1
	}
	c.prec = prec
	return c
}

// Text formats x according to c's notation and precision.
func (c *Context) Text(x lognum.LogValue) string {
	return x.Text(c.notation.format(), c.prec)
}

// NewFloat64 returns the LogValue for x.
func (c *Context) NewFloat64(x float64) lognum.LogValue {
	return lognum.NewFloat64(x)
}

// NewInt64 returns the LogValue for x.
func (c *Context) NewInt64(x int64) lognum.LogValue {
	return lognum.From(x)
}

// NewString returns the LogValue for s and a boolean indicating success. s
// must be in one of the formats accepted by lognum.Parse. On failure, the
// returned value is NaN and the parse error is recorded in c.
func (c *Context) NewString(s string) (lognum.LogValue, bool) {
	x, err := lognum.Parse(s)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return lognum.NaN, false
	}
	return x, true
}

// Parse is like lognum.Parse. Errors are returned, not recorded in c.
func (c *Context) Parse(s string) (lognum.LogValue, error) {
	return lognum.Parse(s)
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records an ErrNaN with message msg if r is a NaN but none of the
// operands are, and returns r.
func (c *Context) check(r lognum.LogValue, msg string, operands ...lognum.LogValue) lognum.LogValue {
	if !r.IsNaN() || c.err != nil {
		return r
	}
	for _, x := range operands {
		if x.IsNaN() {
			return r
		}
	}
	c.err = lognum.ErrNaN{Msg: msg}
	return r
}

// Add returns the sum x+y.
func (c *Context) Add(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Add(y), "addition of infinities with opposite signs", x, y)
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Sub(y), "subtraction of infinities with equal signs", x, y)
}

// Mul returns the product x×y.
func (c *Context) Mul(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return x.Mul(y)
}

// Quo returns the quotient x/y.
func (c *Context) Quo(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Quo(y), "division of zero by zero or infinity by infinity", x, y)
}

// Rem returns the remainder of x/y.
func (c *Context) Rem(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return x.Rem(y)
}

// Neg returns -x.
func (c *Context) Neg(x lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return x.Abs()
}

// Pow returns x**y.
func (c *Context) Pow(x, y lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Pow(y), "zero raised to a negative power or infinity raised to the power of zero", x, y)
}

// Sqrt returns the square root of x.
func (c *Context) Sqrt(x lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Sqrt(), "square root of negative operand", x)
}

// Log10 returns the decimal logarithm of x.
func (c *Context) Log10(x lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Log10(), "logarithm of a negative number", x)
}

// Ln returns the natural logarithm of x.
func (c *Context) Ln(x lognum.LogValue) lognum.LogValue {
	if handleNaNs && c.err != nil {
		return lognum.NaN
	}
	return c.check(x.Ln(), "logarithm of a negative number", x)
}
