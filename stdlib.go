// This file mirrors types and constants from math and strconv.

package lognum

import (
	"errors"
	"fmt"
	"math"
)

// Range limits.
const (
	// MaxLogMagnitude is log10(math.MaxFloat64), the largest exponent for
	// which a LogValue converts to a finite float64.
	MaxLogMagnitude = 308.25471555991675

	// Above this exponent the rounding functions leave values unchanged.
	roundingLimit = 300

	// Exponent differences above which the smaller operand of an addition
	// or subtraction is ignored.
	negligibleDigits = 20

	// Exponent differences at or above which Rem returns zero.
	remDigits = 15

	// Exponents of at least this magnitude are printed in double exponential
	// notation.
	doubleExpLimit = 1e9

	smallestNormal = 2.2250738585072014e-308 // 2**-1022
)

// A Category describes the class of a LogValue, in the manner of IEEE-754
// floating-point classes.
type Category byte

// Categories returned by LogValue.Classify.
const (
	NaNCategory Category = iota
	Infinite
	ZeroCategory
	Subnormal
	Normal
)

var categoryNames = [...]string{
	NaNCategory:  "NaN",
	Infinite:     "Infinite",
	ZeroCategory: "Zero",
	Subnormal:    "Subnormal",
	Normal:       "Normal",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// An ErrNaN is produced by an operation that would lead to a NaN under
// IEEE-754 rules. The arithmetic itself never returns it (it returns NaN
// instead); it is used by wrappers that need to report where a NaN first
// appeared. An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

// parse errors
var (
	ErrEmpty       = errors.New("empty input")
	ErrLeadingChar = errors.New("invalid leading character")
)

// A ParseError records a failed conversion from text.
type ParseError struct {
	Input string // the input
	Part  string // the component that failed: "value", "coefficient" or "exponent"
	Err   error  // the reason the conversion failed
}

func (e *ParseError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("lognum: parsing %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("lognum: parsing %q: invalid %s: %v", e.Input, e.Part, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

// pow10 returns 10**x. Unlike math.Pow10 it accepts non-integer exponents.
func pow10(x float64) float64 {
	return math.Pow(10, x)
}

func xor(a, b bool) bool {
	return a != b
}
