// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import (
	"fmt"
	"strings"
	"testing"
)

func TestStringConversions(t *testing.T) {
	for _, test := range []struct {
		name string
		s    string
	}{
		{"Zero", "0"},
		{"Neg. Zero", "-0"},
		{"Inf", "inf"},
		{"Neg. Inf", "-inf"},
		{"NaN", "NaN"},
		{"Plain", "1234.50"},
		{"Sci. Huge", "1.00e500"},
		{"Sci. Huge Neg.", "-1.00e500"},
		{"Sci. Tiny", "1.00e-500"},
		{"Sci. Coefficient", "2.50e300"},
		{"Sci. Massive", "1e1.00e200"},
		{"Sci. Msv. Neg.", "-1e1.00e200"},
		{"Sci. Miniscule", "1e-1.00e200"},
		{"Sci. Mini Neg.", "-1e-1.00e200"},
		{"Logarithm", "e10.000"},
		{"Log Negative", "-e10.000"},
		{"Log Small", "e-10.000"},
		{"Log Huge", "e500.000"},
		{"Log Huge Neg.", "-e500.000"},
		{"Log Tiny", "e-500.000"},
		{"Log Massive", "e1.000e200"},
		{"Log Msv. Neg.", "-e1.000e200"},
		{"Log Miniscule", "e-1.000e200"},
		{"Log Mini. Neg.", "-e-1.000e200"},
		{"Log Decimal", "e123.456"},
	} {
		x, err := Parse(test.s)
		if err != nil {
			t.Errorf("%s: Parse(%q) failed: %v", test.name, test.s, err)
			continue
		}
		var got string
		if strings.Contains(strings.ToLower(test.name), "log") {
			got = x.TextLog(3)
		} else {
			got = x.TextSci(2)
		}
		if got != test.s {
			t.Errorf("%s: got %q; want %q", test.name, got, test.s)
		}
	}
}

func TestLogValueTextNum(t *testing.T) {
	for _, test := range []struct {
		x    LogValue
		prec int
		want string
		ok   bool
	}{
		{NewFloat64(1234.5), 2, "1234.50", true},
		{NewFloat64(-0.125), 3, "-0.125", true},
		{Zero, 1, "0.0", true},
		{New(false, 20), 0, "100000000000000000000", true},
		{New(false, 400), 2, "", false},
		{Inf, 2, "", false},
	} {
		got, ok := test.x.TextNum(test.prec)
		if got != test.want || ok != test.ok {
			t.Errorf("(%v).TextNum(%d) = %q, %v; want %q, %v", test.x, test.prec, got, ok, test.want, test.ok)
		}
	}
}

func TestLogValueTextSci(t *testing.T) {
	for _, test := range []struct {
		x    LogValue
		prec int
		want string
	}{
		{NewFloat64(1234.5), 2, "1234.50"},
		{NewFloat64(-0.5), 1, "-0.5"},
		{New(false, 8.5), 0, "316227766"},
		{New(false, -5), 2, "1.00e-5"},
		{New(true, 9), 3, "-1.000e9"},
		{New(false, 500.99999), 2, "1.00e501"},
		{New(false, 1e10 + 0.5), 2, "3e1.00e10"},
		{New(true, -2e9), 1, "-1e-2.0e9"},
	} {
		if got := test.x.TextSci(test.prec); got != test.want {
			t.Errorf("(%g).TextSci(%d) = %q; want %q", test.x.exp, test.prec, got, test.want)
		}
	}
}

func TestLogValueTextLog(t *testing.T) {
	for _, test := range []struct {
		x    LogValue
		prec int
		want string
	}{
		{Ten, 1, "e1.0"},
		{New(true, -2.5), 2, "-e-2.50"},
		{New(false, 2e9), 3, "e2.000e9"},
		{New(false, 1.5e300), 1, "e1.5e300"},
		{NegZero, 3, "-0"},
		{NaN, 3, "NaN"},
	} {
		if got := test.x.TextLog(test.prec); got != test.want {
			t.Errorf("(%g).TextLog(%d) = %q; want %q", test.x.exp, test.prec, got, test.want)
		}
	}
}

func TestLogValueString(t *testing.T) {
	for _, test := range []struct {
		x    LogValue
		want string
	}{
		{One, "1.00"},
		{NegOne, "-1.00"},
		{NewFloat64(1234.5), "1234.50"},
		{New(false, -150), "1.00e-150"},
		{New(false, 150), "1e150"},
		{New(false, 150.5), "3e150"},
		{New(true, 999999), "-1e999999"},
		{New(false, 1e7), "e10000000.000"},
		{New(true, 2e9), "-e2.000e9"},
		{Inf, "inf"},
		{NaN, "NaN"},
	} {
		if got := test.x.String(); got != test.want {
			t.Errorf("(%g).String() = %q; want %q", test.x.exp, got, test.want)
		}
	}
}

func TestLogValueText(t *testing.T) {
	for _, test := range []struct {
		x      LogValue
		format byte
		prec   int
		want   string
	}{
		{NewFloat64(2.5), 'f', 3, "2.500"},
		{New(false, 400), 'f', 2, "1.00e400"},
		{New(false, 400), 'e', 1, "1.0e400"},
		{Ten, 'l', 1, "e1.0"},
		{New(false, 150), 'g', 2, "1.00e150"},
		{New(false, 1e7), 'g', 1, "e10000000.0"},
		{Ten, 'x', 2, "%x"},
	} {
		if got := test.x.Text(test.format, test.prec); got != test.want {
			t.Errorf("(%g).Text(%c, %d) = %q; want %q", test.x.exp, test.format, test.prec, got, test.want)
		}
	}

	buf := []byte("x = ")
	if got := string(Ten.Append(buf, 'l', 0)); got != "x = e1" {
		t.Errorf("Append = %q; want %q", got, "x = e1")
	}
}

func TestLogValueFormat(t *testing.T) {
	for _, test := range []struct {
		format string
		x      LogValue
		want   string
	}{
		{"%v", One, "1.00"},
		{"%s", NaN, "NaN"},
		{"%+v", One, "+1.00"},
		{"%+v", NegOne, "-1.00"},
		{"%.3e", New(false, 500), "1.000e500"},
		{"%e", New(false, 500), "1.000000e500"},
		{"%E", New(false, 500), "1.000000E500"},
		{"%f", NewFloat64(2.5), "2.500000"},
		{"%8.1f", NewFloat64(2.5), "     2.5"},
		{"%-8.1f|", NewFloat64(2.5), "2.5     |"},
		{"%G", Inf, "INF"},
		{"%.1g", New(false, 1e7), "e10000000.0"},
		{"%d", One, "%!d(lognum.LogValue=1.00)"},
	} {
		if got := fmt.Sprintf(test.format, test.x); got != test.want {
			t.Errorf("Sprintf(%q, %g) = %q; want %q", test.format, test.x.exp, got, test.want)
		}
	}
}
