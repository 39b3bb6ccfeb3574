// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interop converts LogValues to and from other numeric types:
// math/big integers and floats, shopspring decimals, robaho fixed-point
// numbers and holiman 256-bit unsigned integers.
//
// Conversions into a LogValue never fail; values are rounded to the
// precision of a LogValue. Conversions out of a LogValue return an error
// wrapping ErrNaN or ErrRange if the value cannot be represented by the
// target type.
package interop

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/db47h/lognum"
)

// conversion errors
var (
	ErrNaN   = errors.New("NaN has no representation")
	ErrRange = errors.New("value out of range")
)

const log10of2 = 0.3010299956639812

// FromBigInt returns the LogValue nearest to b. A nil b is treated as zero.
func FromBigInt(b *big.Int) lognum.LogValue {
	if b == nil || b.Sign() == 0 {
		return lognum.Zero
	}
	if b.IsInt64() {
		return lognum.From(b.Int64())
	}
	return FromBigFloat(new(big.Float).SetInt(b))
}

// FromBigFloat returns the LogValue nearest to f. A nil f is treated as zero.
func FromBigFloat(f *big.Float) lognum.LogValue {
	switch {
	case f == nil:
		return lognum.Zero
	case f.IsInf():
		if f.Signbit() {
			return lognum.NegInf
		}
		return lognum.Inf
	case f.Sign() == 0:
		if f.Signbit() {
			return lognum.NegZero
		}
		return lognum.Zero
	}
	// f = mant × 2**e2, 0.5 <= |mant| < 1
	mant := new(big.Float)
	e2 := f.MantExp(mant)
	m, _ := mant.Float64()
	return lognum.New(f.Signbit(), math.Log10(math.Abs(m))+float64(e2)*log10of2)
}

// ToBigFloat returns the *big.Float nearest to x, with a precision of 53
// bits. It fails for NaNs and for values whose binary exponent does not fit
// the exponent range of a big.Float.
func ToBigFloat(x lognum.LogValue) (*big.Float, error) {
	switch {
	case x.IsNaN():
		return nil, fmt.Errorf("%w: %v", ErrNaN, x)
	case x.IsInf():
		return new(big.Float).SetInf(x.Signbit()), nil
	case x.IsZero():
		return new(big.Float).SetFloat64(math.Copysign(0, sign(x))), nil
	}
	if f, ok := x.Float64(); ok && f != 0 {
		return new(big.Float).SetFloat64(f), nil
	}
	// |x| = 2**b2, split into mant × 2**e2 with 1 <= mant < 2
	b2 := x.LogMagnitude() / log10of2
	e2 := math.Floor(b2)
	if e2 > big.MaxExp-1 || e2 < big.MinExp {
		return nil, fmt.Errorf("%w: %v", ErrRange, x)
	}
	mant := math.Copysign(math.Exp2(b2-e2), sign(x))
	z := new(big.Float).SetFloat64(mant)
	return z.SetMantExp(z, int(e2)), nil
}

// ToBigInt returns x truncated towards zero. It fails for NaNs, infinities
// and values too large for a big.Float.
func ToBigInt(x lognum.LogValue) (*big.Int, error) {
	if x.IsInf() {
		return nil, fmt.Errorf("%w: %v", ErrRange, x)
	}
	f, err := ToBigFloat(x)
	if err != nil {
		return nil, err
	}
	z, _ := f.Int(nil)
	return z, nil
}

func sign(x lognum.LogValue) float64 {
	if x.Signbit() {
		return -1
	}
	return 1
}
