package parsefp

import "math"

// Range classifications returned by [RangeError64] and [RangeError32].
const (
	RangeOK        = 0
	RangeOverflow  = 1
	RangeUnderflow = -1
)

// isInf64 reports whether x is an infinity of either sign.
//
// The test reinterprets the bit pattern instead of calling a
// math-library predicate: with the sign bit masked off, an infinity
// is the all-ones exponent with a zero mantissa. The result is
// identical to math.IsInf(x, 0) for every input; tests cross-check
// the two.
func isInf64(x float64) bool {
	return math.Float64bits(x)&^(1<<63) == 0x7FF0000000000000
}

// isInf32 is the float32 analogue of isInf64.
func isInf32(x float32) bool {
	return math.Float32bits(x)&^(1<<31) == 0x7F800000
}

// RangeError64 classifies a value produced by [ParseFloat64].
// It returns [RangeOK] for any finite value or NaN, [RangeOverflow]
// when the decimal input exceeded the largest finite float64 (the
// parse returned +Inf), and [RangeUnderflow] when it exceeded the
// most negative one (the parse returned -Inf).
//
// Reporting negative overflow as -1 and calling it underflow is this
// package's convention, kept for compatibility with strtod-style
// range signaling. A magnitude too small to represent is not a range
// error: it parses to zero and classifies as [RangeOK].
func RangeError64(x float64) int {
	if !isInf64(x) {
		return RangeOK
	}
	if x < 0 {
		return RangeUnderflow
	}
	return RangeOverflow
}

// RangeError32 is the float32 analogue of [RangeError64].
func RangeError32(x float32) int {
	if !isInf32(x) {
		return RangeOK
	}
	if x < 0 {
		return RangeUnderflow
	}
	return RangeOverflow
}
