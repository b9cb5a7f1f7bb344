/*
Package parsefp parses decimal text into IEEE-754 binary
floating-point values (binary32 and binary64) with semantics that
stay identical across platforms: the same overflow and underflow
classification, the same handling of infinity and NaN, and ordering
comparisons that behave the same everywhere. Native string-to-float
conversions differ between platforms in exactly these corners, which
is why this package exists.

# Parsing

[ParseFloat64] and [ParseFloat32] parse a number from the beginning
of a byte slice and report how many bytes they consumed. Parsing is
prefix-based: "1.5 apples" yields 1.5 and a length of 3. No leading
whitespace is skipped and no "inf" or "nan" literals are recognized.

The accepted grammar is:

	sign           ::= '+' | '-'
	digits         ::= { '0' ... '9' }
	hexdigits      ::= { '0' ... '9' | 'a' ... 'f' | 'A' ... 'F' }
	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
	exponent       ::= ('e' | 'E') [sign] digits
	hexsignificand ::= hexdigits '.' hexdigits | '.' hexdigits | hexdigits '.' | hexdigits
	hexexponent    ::= ('p' | 'P') [sign] digits
	number         ::= [sign] significand [exponent]
	                 | [sign] ('0x' | '0X') hexsignificand [hexexponent]

A hexadecimal number without a binary exponent has an implied "p0",
as in C99 strtod.

Three outcomes are possible:

  - Success: the consumed length is at least 1. Out-of-range
    magnitudes are still a success; they produce ±Inf and are
    detected separately with [RangeError64] and [RangeError32].
    Magnitudes too small to represent collapse to zero.
  - No match: the consumed length is 0 and the error is nil. The
    input simply does not begin with a number; callers decide
    whether that matters.
  - Syntax error: the input begins a numeric token that cannot be
    completed, such as "1e+" with no exponent digits. The error
    wraps [ErrSyntax].

# Strategies

Two conversion strategies implement the same engine contract and are
selected at build time, never per call:

  - The default fast path converts with extended-precision integer
    arithmetic and cached powers of ten (a Grisu-family technique).
    It is allocation-free and defers to the fallback whenever it
    cannot guarantee a correctly rounded result.
  - The fallback delegates to the general-purpose converter,
    [strconv.ParseFloat].

Building with the parsefp_nogrisu tag removes the fast path and
routes everything through the fallback. Results are bit-for-bit
identical either way; only speed differs.

# Range errors

[RangeError64] and [RangeError32] classify a freshly parsed value as
0 (in range), +1 (positive overflow), or -1 (negative overflow,
called underflow by this package's convention). The classification
is derived from the value's bit pattern, not from a math-library
predicate, so it cannot disagree between platforms.

# Comparisons

[Cmp64], [Cmp32], [Equal64], and [Equal32] provide deterministic
ordering and equality where native floating-point operators fall
short for sorting and key lookup. Cmp64 orders by native comparison
and resolves any NaN involvement to +1. Cmp32 orders non-NaN values
by their bit patterns reinterpreted as signed integers, which
sidesteps double-rounding artifacts near the float32 boundary; see
its documentation for the exact order. Two NaNs are unequal under
both Equal64 and Equal32. [Sort64], [Sort32], [Search64], and
[Search32] apply the comparators to slices.

# Errors

All functions are pure and panic-free except for the Must variants,
which panic on any parse failure. There is no logging and no
recovery layer; the package is a leaf utility and failure handling
belongs to the caller.
*/
package parsefp
