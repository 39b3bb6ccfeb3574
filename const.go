// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lognum

import "math"

// constants
var (
	Zero        = LogValue{exp: math.Inf(-1)}
	NegZero     = LogValue{neg: true, exp: math.Inf(-1)}
	One         = LogValue{}
	NegOne      = LogValue{neg: true}
	Two         = LogValue{exp: 0.3010299956639812} // log10(2)
	Ten         = LogValue{exp: 1}
	Max         = LogValue{exp: math.MaxFloat64}             // largest finite value
	Min         = LogValue{neg: true, exp: math.MaxFloat64}  // smallest finite value
	MinPositive = LogValue{exp: -math.MaxFloat64}            // smallest positive value
	MaxNegative = LogValue{neg: true, exp: -math.MaxFloat64} // largest negative value
	Inf         = LogValue{exp: math.Inf(1)}
	NegInf      = LogValue{neg: true, exp: math.Inf(1)}
	NaN         = LogValue{exp: math.NaN()}

	E   = LogValue{exp: math.Log10E}         // log10(e)
	Pi  = LogValue{exp: 0.49714987269413385} // log10(π)
	Tau = LogValue{exp: 0.798179868358115}   // log10(2π)
)
