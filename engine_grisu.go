//go:build !parsefp_nogrisu

package parsefp

import "math"

// The fast strategy is compiled in by default; the parsefp_nogrisu
// build tag swaps it for the fallback-only engine.
var activeEngine engine = grisuEngine{}

// grisuEngine converts decimal tokens without allocating: exact
// float64 arithmetic when the digits permit, otherwise
// extended-precision multiplication by cached powers of ten with an
// explicit error bound. Whenever the error bound could change the
// rounded result, and for every hexadecimal token, it defers to the
// fallback instead of returning an approximation.
type grisuEngine struct{}

func (grisuEngine) convert(tok []byte, hex bool) float64 {
	if !hex {
		mantissa, exp10, neg, trunc := readFloat(tok)

		if !trunc {
			if f, ok := atof64exact(mantissa, exp10, neg); ok {
				return f
			}
		}

		var ext extFloat
		if ext.assignDecimal(mantissa, exp10, neg, trunc) {
			b, _ := ext.floatBits()
			return math.Float64frombits(b)
		}
	}
	return strconvEngine{}.convert(tok, hex)
}

// readFloat splits a pre-scanned decimal token into a mantissa of at
// most 19 significant digits and a matching power of ten, so that
// the token's value is mantissa * 10^exp10 (negated when neg is
// set). trunc reports that nonzero digits beyond the mantissa were
// dropped.
func readFloat(tok []byte) (mantissa uint64, exp10 int, neg, trunc bool) {
	const maxMantDigits = 19

	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		neg = tok[i] == '-'
		i++
	}

	// Significand digits. Leading zeros only move the decimal point.
	var nd, ndMant, dp int
	sawdot := false
	for ; i < len(tok); i++ {
		switch c := tok[i]; {
		case c == '.':
			sawdot = true
			dp = nd
			continue
		case isDigit(c):
			if c == '0' && nd == 0 {
				dp--
				continue
			}
			nd++
			if ndMant < maxMantDigits {
				mantissa = mantissa*10 + uint64(c-'0')
				ndMant++
			} else if c != '0' {
				trunc = true
			}
			continue
		}
		break
	}
	if !sawdot {
		dp = nd
	}

	// Exponent moves the decimal point. A huge exponent only needs
	// to stay huge; the exact count stops mattering long before the
	// clamp is reached.
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		i++
		esign := 1
		if tok[i] == '+' {
			i++
		} else if tok[i] == '-' {
			esign = -1
			i++
		}
		e := 0
		for ; i < len(tok) && isDigit(tok[i]); i++ {
			if e < 10000 {
				e = e*10 + int(tok[i]-'0')
			}
		}
		dp += e * esign
	}

	if mantissa != 0 {
		exp10 = dp - ndMant
	}
	return mantissa, exp10, neg, trunc
}

// atof64exact converts mantissa*10^exp10 entirely in float64
// arithmetic when every step is exact. Three shapes qualify: an
// exact integer, an exact integer times an exact power of ten, and
// an exact integer divided by an exact power of ten.
func atof64exact(mantissa uint64, exp10 int, neg bool) (f float64, ok bool) {
	if mantissa>>float64MantBits != 0 {
		return 0, false
	}
	f = float64(mantissa)
	if neg {
		f = -f
	}
	switch {
	case exp10 == 0:
		return f, true
	case exp10 > 0 && exp10 <= 15+22: // int * 10^k
		// If the exponent is big but the digit count is not, zeros
		// can move into the integer part first.
		if exp10 > 22 {
			f *= float64pow10[exp10-22]
			exp10 = 22
		}
		if f > 1e15 || f < -1e15 {
			// The integer part no longer fits exactly.
			return 0, false
		}
		return f * float64pow10[exp10], true
	case exp10 < 0 && exp10 >= -22: // int / 10^k
		return f / float64pow10[-exp10], true
	}
	return 0, false
}
