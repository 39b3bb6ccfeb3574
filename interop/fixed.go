// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interop

import (
	"fmt"
	"math"

	"github.com/db47h/lognum"
	"github.com/robaho/fixed"
)

// maxFixed bounds the magnitude of values accepted by ToFixed.
const maxFixed = 99999999999.9999999

// FromFixed returns the LogValue nearest to f. A NaN f gives a NaN.
func FromFixed(f fixed.Fixed) lognum.LogValue {
	if f.IsNaN() {
		return lognum.NaN
	}
	x, err := lognum.Parse(f.String())
	if err != nil {
		return lognum.NewFloat64(f.Float())
	}
	return x
}

// ToFixed returns x rounded to 7 decimal places. It fails for NaNs and for
// values outside the range of a fixed.Fixed, about ±1e11.
func ToFixed(x lognum.LogValue) (fixed.Fixed, error) {
	if x.IsNaN() {
		return fixed.NaN, fmt.Errorf("%w: %v", ErrNaN, x)
	}
	f, ok := x.Float64()
	if !ok || math.Abs(f) >= maxFixed {
		return fixed.NaN, fmt.Errorf("%w: %v", ErrRange, x)
	}
	z := fixed.NewF(f)
	if z.IsNaN() {
		return fixed.NaN, fmt.Errorf("%w: %v", ErrRange, x)
	}
	return z, nil
}
