package math

import (
	"math"

	"github.com/db47h/lognum"
)

// Gamma returns the Gamma function of x.
//
// Special cases are:
//
//	Gamma(+Inf) = +Inf
//	Gamma(+0) = +Inf
//	Gamma(-0) = -Inf
//	Gamma(x) = NaN for integer x < 0
//	Gamma(-Inf) = NaN
//	Gamma(NaN) = NaN
//
// For |x| < 1e-15, Gamma(x) is 1/x to within float64 precision. For x larger
// than about 2.5e305, the result overflows to +Inf.
func Gamma(x lognum.LogValue) lognum.LogValue {
	switch {
	case x.IsNaN():
		return x
	case x.IsZero():
		return x.Recip()
	case x.IsInf():
		if x.Signbit() {
			return lognum.NaN
		}
		return lognum.Inf
	case x.LogMagnitude() < -15:
		return x.Recip()
	}
	f, ok := x.Float64()
	if !ok {
		// every float64 this large is an integer
		if x.Signbit() {
			return lognum.NaN
		}
		return lognum.Inf
	}
	if f < 0 && f == math.Trunc(f) {
		return lognum.NaN
	}
	lg, sign := math.Lgamma(f)
	return fromLn(sign < 0, lg)
}

// Lgamma returns the natural logarithm of |Gamma(x)| and the sign of
// Gamma(x), -1 or +1.
func Lgamma(x lognum.LogValue) (lgamma lognum.LogValue, sign int) {
	g := Gamma(x)
	sign = 1
	if g.Signbit() {
		sign = -1
	}
	return g.AbsLn(), sign
}

// Factorial returns n!.
func Factorial(n uint64) lognum.LogValue {
	if n < 2 {
		return one
	}
	lg, _ := math.Lgamma(float64(n) + 1)
	return fromLn(false, lg)
}

// binomialLoop is the largest min(k, n-k) for which Binomial multiplies the
// terms of the product formula instead of using Lgamma.
const binomialLoop = 256

// Binomial returns the binomial coefficient of (n, k): the number of ways to
// choose k elements from a set of n. It returns 0 if k > n.
func Binomial(n, k uint64) lognum.LogValue {
	if k > n {
		return lognum.Zero
	}
	if n-k < k {
		k = n - k
	}
	if k <= binomialLoop {
		// C(n, k) = Π (n-k+i)/i for i in [1, k]
		r := one
		for i := uint64(1); i <= k; i++ {
			r = r.Mul(lognum.From(n - k + i)).Quo(lognum.From(i))
		}
		return r
	}
	nf := float64(n)
	kf := float64(k)
	a, _ := math.Lgamma(nf + 1)
	b, _ := math.Lgamma(kf + 1)
	c, _ := math.Lgamma(nf - kf + 1)
	return fromLn(false, a-b-c)
}
