package parsefp

import "strconv"

// An engine converts a pre-scanned numeric token into a binary64
// value. Implementations must be interchangeable bit for bit; they
// are allowed to differ only in speed. The active implementation is
// fixed at build time (see engine_grisu.go and engine_fallback.go),
// so callers never branch on the strategy at run time.
//
// A token is always syntactically complete, so conversion cannot
// fail: overflow yields ±Inf and magnitudes below the representable
// range yield a signed zero.
type engine interface {
	convert(tok []byte, hex bool) float64
}

// strconvEngine is the fallback strategy: it delegates to the
// general-purpose converter in the standard library. It is always
// available and is also where the fast path defers when it cannot
// guarantee a correctly rounded result on its own.
type strconvEngine struct{}

func (strconvEngine) convert(tok []byte, hex bool) float64 {
	s := string(tok)
	if hex && !hasBinaryExponent(tok) {
		// C99-style hex floats leave the binary exponent optional;
		// strconv.ParseFloat does not.
		s += "p0"
	}
	// The token was pre-scanned, so the only possible error is
	// ErrRange and f already carries the ±Inf or signed zero the
	// caller needs.
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func hasBinaryExponent(tok []byte) bool {
	for _, c := range tok {
		if c == 'p' || c == 'P' {
			return true
		}
	}
	return false
}
