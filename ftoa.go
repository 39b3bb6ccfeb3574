// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements LogValue-to-string conversion functions.

package lognum

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// TextNum returns the fixed-point representation of x with prec digits after
// the decimal point, like strconv.FormatFloat(f, 'f', prec, 64). It returns
// false if x is too large to be converted to a float64.
func (x LogValue) TextNum(prec int) (string, bool) {
	if x.exp > MaxLogMagnitude {
		return "", false
	}
	return string(x.appendNum(nil, prec)), true
}

// TextSci returns the scientific representation of x, with prec digits
// after the decimal point in the coefficient:
//
//	±Inf, NaN, ±0   "inf", "-inf", "NaN", "0", "-0"
//	-3 < exp < 9    fixed-point, as for TextNum
//	|exp| < 1e9     "1.23e456"
//	otherwise       "3e1.23e45" (the exponent itself in scientific notation)
func (x LogValue) TextSci(prec int) string {
	return string(x.appendSci(nil, prec))
}

// TextLog returns the logarithmic representation of x, that is its exponent
// prefixed with an "e", with prec digits after the decimal point:
//
//	|exp| < 1e9     "e123.456"
//	otherwise       "e1.234e56"
//
// Special values are formatted as for TextSci.
func (x LogValue) TextLog(prec int) string {
	return string(x.appendLog(nil, prec))
}

// String formats x like x.Text('g', -1): values below 1e100 with two
// decimals, values below 10**1e6 in scientific notation without decimals, and
// larger values in logarithmic notation with three decimals.
func (x LogValue) String() string {
	return x.Text('g', -1)
}

// Text converts x to a string according to the given format and precision
// prec. The format is one of:
//
//	'f'	fixed-point (TextNum); scientific if x does not fit in a float64
//	'e'	scientific (TextSci)
//	'l'	logarithmic (TextLog)
//	'g'	scientific or logarithmic depending on the magnitude of x
//
// A negative precision selects the default for the format: 'g' then
// behaves as String, and the other formats use the smallest number of digits
// necessary to represent the value uniquely.
func (x LogValue) Text(format byte, prec int) string {
	const extra = 16 // sign, exponents, special values
	n := extra
	if prec > 0 {
		n += prec
	}
	return string(x.Append(make([]byte, 0, n), format, prec))
}

// Append appends to buf the string form of x, as generated by x.Text, and
// returns the extended buffer.
func (x LogValue) Append(buf []byte, format byte, prec int) []byte {
	switch format {
	case 'f':
		if x.exp > MaxLogMagnitude {
			return x.appendSci(buf, prec)
		}
		return x.appendNum(buf, prec)
	case 'e':
		return x.appendSci(buf, prec)
	case 'l':
		return x.appendLog(buf, prec)
	case 'g':
		switch {
		case x.exp < 100:
			if prec < 0 {
				prec = 2
			}
			return x.appendSci(buf, prec)
		case x.exp < 1e6:
			if prec < 0 {
				prec = 0
			}
			return x.appendSci(buf, prec)
		}
		if prec < 0 {
			prec = 3
		}
		return x.appendLog(buf, prec)
	}
	// unknown format
	return append(buf, '%', format)
}

// appendSpecial appends the representation of NaN, ±0 or ±Inf and returns
// the extended buffer, or returns nil if x is finite and non-zero.
func (x LogValue) appendSpecial(buf []byte) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x.IsZero():
		if x.neg {
			buf = append(buf, '-')
		}
		return append(buf, '0')
	case x.IsInf():
		if x.neg {
			buf = append(buf, '-')
		}
		return append(buf, "inf"...)
	}
	return nil
}

func (x LogValue) appendNum(buf []byte, prec int) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	return strconv.AppendFloat(buf, pow10(x.exp), 'f', prec, 64)
}

func (x LogValue) appendSci(buf []byte, prec int) []byte {
	if b := x.appendSpecial(buf); b != nil {
		return b
	}
	if x.exp > -3 && x.exp < 9 {
		return x.appendNum(buf, prec)
	}

	if x.neg {
		buf = append(buf, '-')
	}
	// |x| = c × 10**e, 1 <= c < 10
	e := math.Floor(x.exp)
	c := pow10(x.exp - e)
	if math.Abs(x.exp) < doubleExpLimit {
		// 1.23e456
		buf, e = appendCoef(buf, c, e, prec)
		buf = append(buf, 'e')
		return strconv.AppendFloat(buf, e, 'f', 0, 64)
	}
	// 3e1.23e45
	buf, e = appendCoef(buf, c, e, 0)
	buf = append(buf, 'e')
	return appendExpFloat(buf, e, prec)
}

func (x LogValue) appendLog(buf []byte, prec int) []byte {
	if b := x.appendSpecial(buf); b != nil {
		return b
	}
	if x.neg {
		buf = append(buf, '-')
	}
	buf = append(buf, 'e')
	if math.Abs(x.exp) < doubleExpLimit {
		return strconv.AppendFloat(buf, x.exp, 'f', prec, 64)
	}
	return appendExpFloat(buf, x.exp, prec)
}

// appendCoef appends the coefficient c, 1 <= c < 10, with prec decimals. If c
// rounds up to 10, it appends 1 instead and returns e+1 as the new exponent.
func appendCoef(buf []byte, c, e float64, prec int) ([]byte, float64) {
	n := len(buf)
	buf = strconv.AppendFloat(buf, c, 'f', prec, 64)
	if d := buf[n:]; len(d) >= 2 && d[0] == '1' && d[1] == '0' && (len(d) == 2 || d[2] == '.') {
		buf = strconv.AppendFloat(buf[:n], c/10, 'f', prec, 64)
		e++
	}
	return buf, e
}

// appendExpFloat appends f in scientific notation with prec decimals, like
// strconv's 'e' format but with the exponent written without a '+' sign or
// leading zeros: 1.23e45, -1.23e-7.
func appendExpFloat(buf []byte, f float64, prec int) []byte {
	buf = strconv.AppendFloat(buf, f, 'e', prec, 64)
	i := bytes.LastIndexByte(buf, 'e')
	var tmp [8]byte
	exp := append(tmp[:0], buf[i+1:]...)
	buf = buf[:i+1]
	if exp[0] == '-' {
		buf = append(buf, '-')
	}
	exp = bytes.TrimLeft(exp[1:], "0")
	if len(exp) == 0 {
		exp = append(exp, '0')
	}
	return append(buf, exp...)
}

var _ fmt.Formatter = LogValue{}

// Format implements fmt.Formatter. It accepts the formats 'e' and 'E'
// (scientific), 'f' and 'F' (fixed-point), 'g', 'G', 'v' and 's' (see
// LogValue.Text). The precision defaults to 6 for 'e' and 'f' and to the
// magnitude-based default of String for the other verbs. The '+' and '-'
// flags and the width are supported.
func (x LogValue) Format(s fmt.State, verb rune) {
	prec, hasPrec := s.Precision()
	var format byte
	switch verb {
	case 'e', 'E':
		format = 'e'
	case 'f', 'F':
		format = 'f'
	case 'g', 'G', 'v', 's':
		format = 'g'
	default:
		fmt.Fprintf(s, "%%!%c(lognum.LogValue=%s)", verb, x.String())
		return
	}
	if !hasPrec {
		prec = -1
		if format != 'g' {
			prec = 6
		}
	}

	var buf []byte
	if s.Flag('+') && !x.neg && !x.IsNaN() {
		buf = append(buf, '+')
	}
	buf = x.Append(buf, format, prec)
	if verb == 'E' || verb == 'F' || verb == 'G' {
		buf = bytes.ToUpper(buf)
	}

	// pad with spaces up to the requested width
	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(buf) {
		padding = width - len(buf)
	}
	if padding > 0 && !s.Flag('-') {
		writeSpaces(s, padding)
	}
	_, _ = s.Write(buf)
	if padding > 0 && s.Flag('-') {
		writeSpaces(s, padding)
	}
}

func writeSpaces(s fmt.State, n int) {
	for ; n > 0; n-- {
		_, _ = s.Write([]byte{' '})
	}
}
