package math

import (
	"cmp"
	"slices"

	"github.com/db47h/lognum"
)

// Sum returns the sum of xs, or zero if xs is empty.
//
// The values are added in increasing order of magnitude, so that many small
// values can together contribute to a large one even if each of them alone is
// negligible. The order of xs is not modified.
func Sum(xs ...lognum.LogValue) lognum.LogValue {
	if len(xs) == 0 {
		return lognum.Zero
	}
	s := slices.Clone(xs)
	slices.SortFunc(s, func(a, b lognum.LogValue) int {
		return cmp.Compare(a.LogMagnitude(), b.LogMagnitude())
	})
	r := s[0]
	for _, x := range s[1:] {
		r = r.Add(x)
	}
	return r
}

// Product returns the product of xs, or one if xs is empty.
func Product(xs ...lognum.LogValue) lognum.LogValue {
	r := one
	for _, x := range xs {
		r = r.Mul(x)
	}
	return r
}

// Mean returns the arithmetic mean of xs. It returns NaN if xs is empty.
func Mean(xs ...lognum.LogValue) lognum.LogValue {
	if len(xs) == 0 {
		return lognum.NaN
	}
	return Sum(xs...).Quo(lognum.From(len(xs)))
}

// GeoMean returns the geometric mean of xs. It returns NaN if xs is empty or
// if the product of xs is negative.
func GeoMean(xs ...lognum.LogValue) lognum.LogValue {
	if len(xs) == 0 {
		return lognum.NaN
	}
	p := Product(xs...)
	if p.Signbit() && !p.IsZero() {
		return lognum.NaN
	}
	return p.Powf(1 / float64(len(xs)))
}
