package parsefp

import (
	"errors"
	"fmt"
	"math"
)

// ErrSyntax indicates input that begins a numeric token but cannot be
// completed into one, such as an exponent marker with no digits.
var ErrSyntax = errors.New("invalid number syntax")

// float32OverflowBoundary is (2 - 2^-24) * 2^127, the magnitude at
// which float64-to-float32 conversion starts rounding to infinity.
const float32OverflowBoundary = 0x1.ffffffp+127

// ParseFloat64 parses a 64-bit floating-point number from the
// beginning of buf and returns the value together with the number of
// bytes consumed.
//
// Parsing is prefix-based and stops at the first byte that cannot
// extend the number. No leading whitespace is skipped. A consumed
// length of 0 with a nil error means buf does not begin with a
// number; a non-nil error (wrapping [ErrSyntax]) is returned only
// when buf begins a numeric token that cannot be completed.
//
// Out-of-range magnitudes parse successfully to ±Inf; use
// [RangeError64] to detect them. Magnitudes too small for a float64
// collapse to zero, preserving the sign, and are in range.
func ParseFloat64(buf []byte) (float64, int, error) {
	n, hex, err := scan(buf)
	if n == 0 || err != nil {
		return 0, 0, err
	}
	return activeEngine.convert(buf[:n], hex), n, nil
}

// ParseFloat32 parses a 32-bit floating-point number from the
// beginning of buf. The input is parsed as a 64-bit value and then
// narrowed.
//
// When the narrowed value is infinite, the sign of the infinity is
// taken from the 64-bit value, not from the narrowed result. If the
// 64-bit value sits exactly on the float32 overflow boundary, the
// infinity may be an artifact of double rounding rather than a true
// overflow: ParseFloat32 then returns a consumed length of 0, and
// callers that need a trustworthy float32 must treat the input as
// not parseable. A value strictly beyond the boundary is a genuine
// overflow and is returned as a success, detectable with
// [RangeError32].
func ParseFloat32(buf []byte) (float32, int, error) {
	v, n, err := ParseFloat64(buf)
	if n == 0 || err != nil {
		return 0, 0, err
	}
	f := float32(v)
	if !isInf32(f) {
		return f, n, nil
	}
	f = float32(math.Inf(1))
	if v < 0 {
		f = float32(math.Inf(-1))
	}
	if math.Abs(v) > float32OverflowBoundary {
		return f, n, nil
	}
	// Exactly on the boundary: the 64-bit rounding alone may have
	// tipped the value over, so the 32-bit result cannot be trusted.
	return f, 0, nil
}

// scan reports the length of the numeric token at the start of buf
// and whether the token uses hexadecimal float syntax. A zero length
// with a nil error means buf does not start with a number.
func scan(buf []byte) (n int, hex bool, err error) {
	i := 0

	// Sign
	if i < len(buf) && (buf[i] == '+' || buf[i] == '-') {
		i++
	}

	// Hexadecimal significand
	if i+1 < len(buf) && buf[i] == '0' && (buf[i+1] == 'x' || buf[i+1] == 'X') {
		j := i + 2
		sawdigits := false
		for j < len(buf) && isHexDigit(buf[j]) {
			sawdigits = true
			j++
		}
		if j < len(buf) && buf[j] == '.' {
			j++
			for j < len(buf) && isHexDigit(buf[j]) {
				sawdigits = true
				j++
			}
		}
		if !sawdigits {
			// "0x" with no hex digits: the number is the leading zero.
			return i + 1, false, nil
		}
		// Binary exponent
		if j < len(buf) && (buf[j] == 'p' || buf[j] == 'P') {
			j, err = scanExponent(buf, j)
			if err != nil {
				return 0, false, err
			}
		}
		return j, true, nil
	}

	// Decimal significand
	sawdigits := false
	for i < len(buf) && isDigit(buf[i]) {
		sawdigits = true
		i++
	}
	if i < len(buf) && buf[i] == '.' {
		i++
		for i < len(buf) && isDigit(buf[i]) {
			sawdigits = true
			i++
		}
	}
	if !sawdigits {
		return 0, false, nil
	}

	// Decimal exponent
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		i, err = scanExponent(buf, i)
		if err != nil {
			return 0, false, err
		}
	}
	return i, false, nil
}

// scanExponent scans an exponent part starting at the marker buf[i].
// At least one digit must follow the marker and its optional sign.
func scanExponent(buf []byte, i int) (int, error) {
	j := i + 1
	if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
		j++
	}
	if j >= len(buf) || !isDigit(buf[j]) {
		return 0, fmt.Errorf("exponent %q has no digits: %w", buf[i], ErrSyntax)
	}
	for j < len(buf) && isDigit(buf[j]) {
		j++
	}
	return j, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
