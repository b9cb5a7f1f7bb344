//go:build !parsefp_nogrisu

package parsefp

import "math/bits"

// An extFloat is an extended-precision floating-point number: the
// value mant * 2^exp, negated when neg is set. It carries more
// precision than a float64 and does not try to save bits.
type extFloat struct {
	mant uint64
	exp  int
	neg  bool
}

const (
	float64MantBits = 52
	float64ExpBits  = 11
	float64Bias     = -1023

	// The cached powersOfTen table covers 10^-348 through 10^340 in
	// steps of 8; smallPowersOfTen fills in the step.
	firstPowerOfTen = -348
	stepPowerOfTen  = 8
)

// Exact powers of ten representable in a uint64.
var uint64pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// Exact powers of ten representable in a float64.
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

var smallPowersOfTen = [...]extFloat{
	{1 << 63, -63, false},        // 1
	{0xa << 60, -60, false},      // 1e1
	{0x64 << 57, -57, false},     // 1e2
	{0x3e8 << 54, -54, false},    // 1e3
	{0x2710 << 50, -50, false},   // 1e4
	{0x186a0 << 47, -47, false},  // 1e5
	{0xf4240 << 44, -44, false},  // 1e6
	{0x989680 << 40, -40, false}, // 1e7
}

// Powers of ten taken from the double-conversion library.
// http://code.google.com/p/double-conversion/
var powersOfTen = [...]extFloat{
	{0xfa8fd5a0081c0288, -1220, false}, // 10^-348
	{0xbaaee17fa23ebf76, -1193, false}, // 10^-340
	{0x8b16fb203055ac76, -1166, false}, // 10^-332
	{0xcf42894a5dce35ea, -1140, false}, // 10^-324
	{0x9a6bb0aa55653b2d, -1113, false}, // 10^-316
	{0xe61acf033d1a45df, -1087, false}, // 10^-308
	{0xab70fe17c79ac6ca, -1060, false}, // 10^-300
	{0xff77b1fcbebcdc4f, -1034, false}, // 10^-292
	{0xbe5691ef416bd60c, -1007, false}, // 10^-284
	{0x8dd01fad907ffc3c, -980, false},  // 10^-276
	{0xd3515c2831559a83, -954, false},  // 10^-268
	{0x9d71ac8fada6c9b5, -927, false},  // 10^-260
	{0xea9c227723ee8bcb, -901, false},  // 10^-252
	{0xaecc49914078536d, -874, false},  // 10^-244
	{0x823c12795db6ce57, -847, false},  // 10^-236
	{0xc21094364dfb5637, -821, false},  // 10^-228
	{0x9096ea6f3848984f, -794, false},  // 10^-220
	{0xd77485cb25823ac7, -768, false},  // 10^-212
	{0xa086cfcd97bf97f4, -741, false},  // 10^-204
	{0xef340a98172aace5, -715, false},  // 10^-196
	{0xb23867fb2a35b28e, -688, false},  // 10^-188
	{0x84c8d4dfd2c63f3b, -661, false},  // 10^-180
	{0xc5dd44271ad3cdba, -635, false},  // 10^-172
	{0x936b9fcebb25c996, -608, false},  // 10^-164
	{0xdbac6c247d62a584, -582, false},  // 10^-156
	{0xa3ab66580d5fdaf6, -555, false},  // 10^-148
	{0xf3e2f893dec3f126, -529, false},  // 10^-140
	{0xb5b5ada8aaff80b8, -502, false},  // 10^-132
	{0x87625f056c7c4a8b, -475, false},  // 10^-124
	{0xc9bcff6034c13053, -449, false},  // 10^-116
	{0x964e858c91ba2655, -422, false},  // 10^-108
	{0xdff9772470297ebd, -396, false},  // 10^-100
	{0xa6dfbd9fb8e5b88f, -369, false},  // 10^-92
	{0xf8a95fcf88747d94, -343, false},  // 10^-84
	{0xb94470938fa89bcf, -316, false},  // 10^-76
	{0x8a08f0f8bf0f156b, -289, false},  // 10^-68
	{0xcdb02555653131b6, -263, false},  // 10^-60
	{0x993fe2c6d07b7fac, -236, false},  // 10^-52
	{0xe45c10c42a2b3b06, -210, false},  // 10^-44
	{0xaa242499697392d3, -183, false},  // 10^-36
	{0xfd87b5f28300ca0e, -157, false},  // 10^-28
	{0xbce5086492111aeb, -130, false},  // 10^-20
	{0x8cbccc096f5088cc, -103, false},  // 10^-12
	{0xd1b71758e219652c, -77, false},   // 10^-4
	{0x9c40000000000000, -50, false},   // 10^4
	{0xe8d4a51000000000, -24, false},   // 10^12
	{0xad78ebc5ac620000, 3, false},     // 10^20
	{0x813f3978f8940984, 30, false},    // 10^28
	{0xc097ce7bc90715b3, 56, false},    // 10^36
	{0x8f7e32ce7bea5c70, 83, false},    // 10^44
	{0xd5d238a4abe98068, 109, false},   // 10^52
	{0x9f4f2726179a2245, 136, false},   // 10^60
	{0xed63a231d4c4fb27, 162, false},   // 10^68
	{0xb0de65388cc8ada8, 189, false},   // 10^76
	{0x83c7088e1aab65db, 216, false},   // 10^84
	{0xc45d1df942711d9a, 242, false},   // 10^92
	{0x924d692ca61be758, 269, false},   // 10^100
	{0xda01ee641a708dea, 295, false},   // 10^108
	{0xa26da3999aef774a, 322, false},   // 10^116
	{0xf209787bb47d6b85, 348, false},   // 10^124
	{0xb454e4a179dd1877, 375, false},   // 10^132
	{0x865b86925b9bc5c2, 402, false},   // 10^140
	{0xc83553c5c8965d3d, 428, false},   // 10^148
	{0x952ab45cfa97a0b3, 455, false},   // 10^156
	{0xde469fbd99a05fe3, 481, false},   // 10^164
	{0xa59bc234db398c25, 508, false},   // 10^172
	{0xf6c69a72a3989f5c, 534, false},   // 10^180
	{0xb7dcbf5354e9bece, 561, false},   // 10^188
	{0x88fcf317f22241e2, 588, false},   // 10^196
	{0xcc20ce9bd35c78a5, 614, false},   // 10^204
	{0x98165af37b2153df, 641, false},   // 10^212
	{0xe2a0b5dc971f303a, 667, false},   // 10^220
	{0xa8d9d1535ce3b396, 694, false},   // 10^228
	{0xfb9b7cd9a4a7443c, 720, false},   // 10^236
	{0xbb764c4ca7a44410, 747, false},   // 10^244
	{0x8bab8eefb6409c1a, 774, false},   // 10^252
	{0xd01fef10a657842c, 800, false},   // 10^260
	{0x9b10a4e5e9913129, 827, false},   // 10^268
	{0xe7109bfba19c0c9d, 853, false},   // 10^276
	{0xac2820d9623bf429, 880, false},   // 10^284
	{0x80444b5e7aa7cf85, 907, false},   // 10^292
	{0xbf21e44003acdd2d, 933, false},   // 10^300
	{0x8e679c2f5e44ff8f, 960, false},   // 10^308
	{0xd433179d9c8cb841, 986, false},   // 10^316
	{0x9e19db92b4e31ba9, 1013, false},  // 10^324
	{0xeb96bf6ebadf77d9, 1039, false},  // 10^332
	{0xaf87023b9bf0ee6b, 1066, false},  // 10^340
}

// normalize shifts the mantissa so its highest bit is set and
// returns the shift amount.
func (f *extFloat) normalize() uint {
	if f.mant == 0 {
		return 0
	}
	shift := uint(bits.LeadingZeros64(f.mant))
	f.mant <<= shift
	f.exp -= int(shift)
	return shift
}

// multiply sets f to the product f*g. The result is correctly
// rounded but not normalized.
func (f *extFloat) multiply(g extFloat) {
	hi, lo := bits.Mul64(f.mant, g.mant)
	f.mant = hi + lo>>63 // round up when the discarded half is at least 1/2
	f.exp = f.exp + g.exp + 64
}

// assignDecimal sets f to an approximation of mantissa*10^exp10 and
// reports whether f is guaranteed to round to the binary64 value of
// the original decimal. trunc means the decimal had nonzero digits
// beyond the 19 carried in mantissa. When assignDecimal reports
// false, the caller must use an exact converter instead.
func (f *extFloat) assignDecimal(mantissa uint64, exp10 int, neg, trunc bool) (ok bool) {
	const uint64digits = 19
	const errorscale = 8
	errBound := 0 // upper bound for the error, in errorscale*ulp units
	if trunc {
		// Dropped digits amount to less than one ulp of the 19-digit
		// mantissa.
		errBound += errorscale
	}

	f.mant = mantissa
	f.exp = 0
	f.neg = neg

	i := (exp10 - firstPowerOfTen) / stepPowerOfTen
	if exp10 < firstPowerOfTen || i >= len(powersOfTen) {
		return false
	}
	adjExp := (exp10 - firstPowerOfTen) % stepPowerOfTen

	// Multiply by the in-step power first. Normalizing shifts the
	// mantissa left, so any error already accumulated grows with it.
	if adjExp < uint64digits && mantissa < uint64pow10[uint64digits-adjExp] {
		// The mantissa absorbs the small power exactly.
		f.mant *= uint64pow10[adjExp]
		errBound <<= f.normalize()
	} else {
		errBound <<= f.normalize()
		f.multiply(smallPowersOfTen[adjExp])
		errBound += errorscale / 2
	}

	f.multiply(powersOfTen[i])
	if errBound > 0 {
		errBound++
	}
	errBound += errorscale / 2

	shift := f.normalize()
	errBound <<= shift

	// f now approximates the decimal. The answer is only certain if
	// perturbing the mantissa by the error bound cannot change how
	// the 64-bit mantissa rounds to 53 (or fewer, for denormals)
	// bits.
	denormalExp := float64Bias - 63
	var extrabits uint
	if f.exp <= denormalExp {
		extrabits = 63 - float64MantBits + 1 + uint(denormalExp-f.exp)
	} else {
		extrabits = 63 - float64MantBits
	}

	halfway := uint64(1) << (extrabits - 1)
	mantExtra := f.mant & (1<<extrabits - 1)

	// Signed comparison: errBound may exceed halfway.
	if int64(halfway)-int64(errBound) < int64(mantExtra) &&
		int64(mantExtra) < int64(halfway)+int64(errBound) {
		return false
	}
	return true
}

// floatBits returns the bits of the float64 that best approximates
// f. overflow reports that the result is ±Inf.
func (f *extFloat) floatBits() (b uint64, overflow bool) {
	f.normalize()

	exp := f.exp + 63

	// Exponent too small: shrink towards a denormal.
	if exp < float64Bias+1 {
		n := float64Bias + 1 - exp
		f.mant >>= uint(n)
		exp += n
	}

	// Extract 1+52 bits and round to nearest.
	mant := f.mant >> (63 - float64MantBits)
	if f.mant&(1<<(62-float64MantBits)) != 0 {
		mant++
	}

	// Rounding may have added a bit; shift down.
	if mant == 2<<float64MantBits {
		mant >>= 1
		exp++
	}

	// Infinities.
	if exp-float64Bias >= 1<<float64ExpBits-1 {
		mant = 0
		exp = 1<<float64ExpBits - 1 + float64Bias
		overflow = true
	} else if mant&(1<<float64MantBits) == 0 {
		// Denormalized.
		exp = float64Bias
	}

	b = mant & (1<<float64MantBits - 1)
	b |= uint64((exp-float64Bias)&(1<<float64ExpBits-1)) << float64MantBits
	if f.neg {
		b |= 1 << (float64MantBits + float64ExpBits)
	}
	return b, overflow
}
