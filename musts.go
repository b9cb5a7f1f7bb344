package parsefp

import "fmt"

// MustParseFloat64 is like [ParseFloat64] but takes a string,
// requires it to be consumed entirely, and panics if it is not.
// It simplifies safe initialization of global variables and test
// fixtures.
func MustParseFloat64(s string) float64 {
	f, n, err := ParseFloat64([]byte(s))
	if err != nil || n == 0 || n != len(s) {
		panic(fmt.Sprintf("MustParseFloat64(%q) failed: parsed %v of %v bytes: %v", s, n, len(s), err))
	}
	return f
}

// MustParseFloat32 is like [ParseFloat32] but takes a string,
// requires it to be consumed entirely, and panics if it is not.
// Inputs whose narrowing cannot be trusted (see [ParseFloat32])
// consume zero bytes and therefore panic.
func MustParseFloat32(s string) float32 {
	f, n, err := ParseFloat32([]byte(s))
	if err != nil || n == 0 || n != len(s) {
		panic(fmt.Sprintf("MustParseFloat32(%q) failed: parsed %v of %v bytes: %v", s, n, len(s), err))
	}
	return f
}
