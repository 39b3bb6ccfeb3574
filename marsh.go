// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of LogValues.

package lognum

import (
	"fmt"
	"strconv"
)

// MarshalText implements the encoding.TextMarshaler interface. Finite
// non-zero values are marshaled in logarithmic notation with the shortest
// exponent that round-trips exactly, like "e123.456" or "-e1e+200".
func (x LogValue) MarshalText() (text []byte, err error) {
	return x.appendLossless(nil), nil
}

func (x LogValue) appendLossless(buf []byte) []byte {
	if b := x.appendSpecial(buf); b != nil {
		return b
	}
	if x.neg {
		buf = append(buf, '-')
	}
	buf = append(buf, 'e')
	return strconv.AppendFloat(buf, x.exp, 'g', -1, 64)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// any format accepted by Parse.
func (z *LogValue) UnmarshalText(text []byte) error {
	x, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("lognum: cannot unmarshal %q into a *lognum.LogValue (%v)", text, err)
	}
	*z = x
	return nil
}
