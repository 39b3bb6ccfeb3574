// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interop

import (
	"fmt"
	"math"

	"github.com/db47h/lognum"
	"github.com/shopspring/decimal"
)

// decimalDigits is the number of significant digits in the coefficient of
// decimals returned by ToDecimal.
const decimalDigits = 16

// FromDecimal returns the LogValue nearest to d.
func FromDecimal(d decimal.Decimal) lognum.LogValue {
	if d.Sign() == 0 {
		return lognum.Zero
	}
	// d = coef × 10**exp
	return FromBigInt(d.Coefficient()).Mul(lognum.New(false, float64(d.Exponent())))
}

// ToDecimal returns x as a decimal with 16 significant digits. It fails for
// NaNs, infinities and values whose decimal exponent does not fit an int32.
func ToDecimal(x lognum.LogValue) (decimal.Decimal, error) {
	switch {
	case x.IsNaN():
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNaN, x)
	case x.IsInf():
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRange, x)
	case x.IsZero():
		return decimal.Zero, nil
	}
	e := math.Floor(x.LogMagnitude())
	if e-decimalDigits+1 < math.MinInt32 || e > math.MaxInt32 {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRange, x)
	}
	// |x| = c × 10**e, 1 <= c < 10
	c := math.Pow(10, x.LogMagnitude()-e)
	m := int64(math.Round(c * 1e15))
	if x.Signbit() {
		m = -m
	}
	return decimal.New(m, int32(e)-(decimalDigits-1)), nil
}
