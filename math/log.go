package math

import (
	"math"

	"github.com/db47h/lognum"
)

// Log returns the natural logarithm of x. It returns NaN if x < 0.
//
// This function is a proxy for x.Ln().
func Log(x lognum.LogValue) lognum.LogValue {
	return x.Ln()
}

// Log10 returns the decimal logarithm of x. It returns NaN if x < 0.
func Log10(x lognum.LogValue) lognum.LogValue {
	return x.Log10()
}

// LogN returns the logarithm of x in base b, computed as ln(x)/ln(b). Unlike
// x.Log, the base itself may be any LogValue.
//
// LogN returns NaN if x < 0 or b < 0, if b is 1, or if both ln(x) and ln(b)
// are zero or infinite.
func LogN(x, b lognum.LogValue) lognum.LogValue {
	lb := b.Ln()
	if lb.IsZero() {
		return lognum.NaN
	}
	return x.Ln().Quo(lb)
}

// Log1p returns the natural logarithm of 1 plus x. It is more accurate than
// Log(x.Add(One)) when x is near zero.
//
// Special cases are:
//
//	Log1p(±0) = ±0
//	Log1p(-1) = -Inf
//	Log1p(x < -1) = NaN
//	Log1p(+Inf) = +Inf
//	Log1p(NaN) = NaN
func Log1p(x lognum.LogValue) lognum.LogValue {
	switch {
	case x.IsNaN() || x.IsZero():
		return x
	case negligible(x):
		// log(1+x) = x - x²/2 + ...
		return x
	case small(x):
		f, _ := x.Float64()
		return lognum.NewFloat64(math.Log1p(f))
	}
	return x.Add(one).Ln()
}
