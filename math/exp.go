package math

import (
	"math"

	"github.com/db47h/lognum"
)

// Exp returns e**x.
//
// This function is a proxy for x.Exp().
func Exp(x lognum.LogValue) lognum.LogValue {
	return x.Exp()
}

// Exp2 returns 2**x.
func Exp2(x lognum.LogValue) lognum.LogValue {
	return two.Pow(x)
}

// Expm1 returns e**x - 1. It is more accurate than Exp(x).Sub(One) when x is
// near zero.
//
// Special cases are:
//
//	Expm1(±0) = ±0
//	Expm1(+Inf) = +Inf
//	Expm1(-Inf) = -1
//	Expm1(NaN) = NaN
func Expm1(x lognum.LogValue) lognum.LogValue {
	switch {
	case x.IsNaN() || x.IsZero():
		return x
	case x.IsInf():
		if x.Signbit() {
			return lognum.NegOne
		}
		return lognum.Inf
	case negligible(x):
		// e**x - 1 = x + x²/2 + ...
		return x
	case small(x):
		f, _ := x.Float64()
		return lognum.NewFloat64(math.Expm1(f))
	}
	return x.Exp().Sub(one)
}
