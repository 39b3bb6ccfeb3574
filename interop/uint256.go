// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interop

import (
	"fmt"

	"github.com/db47h/lognum"
	"github.com/holiman/uint256"
)

// FromUint256 returns the LogValue nearest to u. A nil u is treated as zero.
func FromUint256(u *uint256.Int) lognum.LogValue {
	if u == nil || u.IsZero() {
		return lognum.Zero
	}
	if u.IsUint64() {
		return lognum.From(u.Uint64())
	}
	return FromBigInt(u.ToBig())
}

// ToUint256 returns x truncated towards zero as a 256-bit unsigned integer.
// It fails for NaNs, for values of -1 or less and for values of 2**256 or
// more.
func ToUint256(x lognum.LogValue) (*uint256.Int, error) {
	if x.IsNaN() {
		return nil, fmt.Errorf("%w: %v", ErrNaN, x)
	}
	if x.IsInf() || x.LogMagnitude() >= 256*log10of2 {
		return nil, fmt.Errorf("%w: %v", ErrRange, x)
	}
	b, err := ToBigInt(x)
	if err != nil {
		return nil, err
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v", ErrRange, x)
	}
	z, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %v", ErrRange, x)
	}
	return z, nil
}
