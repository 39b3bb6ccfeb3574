package math

import (
	"math"

	"github.com/db47h/lognum"
)

// constants
var (
	one = lognum.One
	two = lognum.Two
)

// fromLn returns the LogValue of sign neg whose natural logarithm of the
// magnitude is l.
func fromLn(neg bool, l float64) lognum.LogValue {
	return lognum.New(neg, l/math.Ln10)
}

// small reports whether |x| < 1, in which case x converts to a float64
// without overflow.
func small(x lognum.LogValue) bool {
	return x.LogMagnitude() < 0
}

// negligible reports whether |x| is so small that 1+x rounds to 1 and
// higher-order terms of a series in x can be dropped.
func negligible(x lognum.LogValue) bool {
	return x.LogMagnitude() < -16
}
