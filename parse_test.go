package parsefp

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

var negZero = math.Copysign(0, -1)

func TestParseFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			want  float64
		}{
			{"0", 0},
			{"1", 1},
			{"+1", 1},
			{"-1", -1},
			{"00012", 12},
			{"12345", 12345},
			{"1.5", 1.5},
			{".5", 0.5},
			{"5.", 5},
			{"0.0625", 0.0625},
			{"1e3", 1000},
			{"1E3", 1000},
			{"1e+3", 1000},
			{"1e-3", 1e-3},
			{"-1.25e-2", -0.0125},
			{"3.141592653589793", 3.141592653589793},
			{"1.7976931348623157e308", math.MaxFloat64},
			{"5e-324", math.SmallestNonzeroFloat64},
			{"4.9406564584124654e-324", math.SmallestNonzeroFloat64},
			{"9007199254740993", 9007199254740992},
			{"1e-400", 0},
			{"-1e-400", negZero},
			{"0x1.8p3", 12},
			{"0x1p-2", 0.25},
			{"0x.8p1", 1},
			{"0x1.8", 1.5},
			{"0XA", 10},
			{"0x10", 16},
			{"-0x1.8p+3", -12},
		}
		for _, tt := range tests {
			got, n, err := ParseFloat64([]byte(tt.input))
			if err != nil {
				t.Errorf("ParseFloat64(%q) failed: %v", tt.input, err)
				continue
			}
			if n != len(tt.input) {
				t.Errorf("ParseFloat64(%q) consumed %v bytes, want %v", tt.input, n, len(tt.input))
			}
			if math.Float64bits(got) != math.Float64bits(tt.want) {
				t.Errorf("ParseFloat64(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("partial", func(t *testing.T) {
		tests := []struct {
			input string
			want  float64
			n     int
		}{
			{"1.5 apples", 1.5, 3},
			{"1x", 1, 1},
			{"12 ", 12, 2},
			{"1.2.3", 1.2, 3},
			{"1e5e6", 1e5, 3},
			{"1e10,", 1e10, 4},
			{"7_000", 7, 1},
			{"0x", 0, 1},
			{"0xzz", 0, 1},
			{"-0x", negZero, 2},
			{"0x1.8p3q", 12, 7},
		}
		for _, tt := range tests {
			got, n, err := ParseFloat64([]byte(tt.input))
			if err != nil {
				t.Errorf("ParseFloat64(%q) failed: %v", tt.input, err)
				continue
			}
			if n != tt.n {
				t.Errorf("ParseFloat64(%q) consumed %v bytes, want %v", tt.input, n, tt.n)
			}
			if math.Float64bits(got) != math.Float64bits(tt.want) {
				t.Errorf("ParseFloat64(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("nomatch", func(t *testing.T) {
		tests := []string{
			"", "abc", " 1", "\t1", "+", "-", ".", "+.", "..",
			"e5", "+x", "x0x1p3",
			// No special literals: the grammar is numeric tokens only.
			"inf", "Infinity", "nan", "NaN",
		}
		for _, s := range tests {
			got, n, err := ParseFloat64([]byte(s))
			if err != nil {
				t.Errorf("ParseFloat64(%q) failed: %v", s, err)
				continue
			}
			if n != 0 || got != 0 {
				t.Errorf("ParseFloat64(%q) = %v, %v, want 0, 0 (no match)", s, got, n)
			}
		}
	})

	t.Run("syntax", func(t *testing.T) {
		tests := []string{
			"1e", "1e+", "1e-", "1.5E+", "1e+x", ".5e",
			"0x1p", "0x1p-", "0x1.8P+", "0x8P+q",
		}
		for _, s := range tests {
			got, n, err := ParseFloat64([]byte(s))
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("ParseFloat64(%q) = %v, %v, %v, want ErrSyntax", s, got, n, err)
				continue
			}
			if n != 0 || got != 0 {
				t.Errorf("ParseFloat64(%q) = %v, %v on error, want 0, 0", s, got, n)
			}
		}
	})
}

func TestParseFloat64_RangeError(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1e400", RangeOverflow},
		{"-1e400", RangeUnderflow},
		{"1e309", RangeOverflow},
		{"-1e309", RangeUnderflow},
		{"1e99999", RangeOverflow},
		{"1.7976931348623157e308", RangeOK},
		{"-1.7976931348623157e308", RangeOK},
		{"1e-400", RangeOK},
		{"0", RangeOK},
	}
	for _, tt := range tests {
		got, n, err := ParseFloat64([]byte(tt.input))
		if err != nil || n != len(tt.input) {
			t.Errorf("ParseFloat64(%q) = %v bytes, err %v, want full parse", tt.input, n, err)
			continue
		}
		if r := RangeError64(got); r != tt.want {
			t.Errorf("RangeError64(ParseFloat64(%q)) = %v, want %v", tt.input, r, tt.want)
		}
	}
}

// The hard cases that separate correct converters from approximate
// ones: halfway points, truncated long mantissas, and values around
// the denormal threshold. The result must match the general-purpose
// converter bit for bit regardless of the active engine.
func TestParseFloat64_MatchesStrconv(t *testing.T) {
	tests := []string{
		"2.2250738585072011e-308", // just below the normal threshold
		"2.2250738585072014e-308", // smallest normal
		"0.500000000000000166533453693773481063544750213623046875",
		"123456789012345678901234567890",
		"1090544144181609348835077142190",
		"0.1",
		"0.3",
		"9007199254740992",
		"9007199254740993",
		"17976931348623157081452742373170435679807056752584499659891747680315726078002853876058955863276687817154045895351438246423432132688946418276846754670353751698604991057655128207624549009038932894407586850845513394230458323690322294816580855933212334827479782620414472316873817718091929988125040402618412485836",
		"2.2250738585072012e-308",
		"4.4501477170144023e-308",
		"1.00000000000000011102230246251565404236316680908203125",
		"5.9604644775390625e-8",
	}
	for _, s := range tests {
		got, n, err := ParseFloat64([]byte(s))
		if err != nil || n != len(s) {
			t.Errorf("ParseFloat64(%q) = %v bytes, err %v, want full parse", s, n, err)
			continue
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q) failed: %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("ParseFloat64(%q) = %x, want %x", s, math.Float64bits(got), math.Float64bits(want))
		}
	}
}

func TestParseFloat32(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input string
			want  float32
			n     int
		}{
			{"1.5", 1.5, 3},
			{"-2.5", -2.5, 4},
			{"0x1.8p3", 12, 7},
			{"1e10", 1e10, 4},
			{"3.4028235e38", math.MaxFloat32, 12},
			{"1.5 apples", 1.5, 3},
		}
		for _, tt := range tests {
			got, n, err := ParseFloat32([]byte(tt.input))
			if err != nil {
				t.Errorf("ParseFloat32(%q) failed: %v", tt.input, err)
				continue
			}
			if n != tt.n {
				t.Errorf("ParseFloat32(%q) consumed %v bytes, want %v", tt.input, n, tt.n)
			}
			if math.Float32bits(got) != math.Float32bits(tt.want) {
				t.Errorf("ParseFloat32(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		// The 64-bit value is beyond the float32 range by more than
		// rounding error: a genuine overflow, reported as a
		// successful parse of a signed infinity.
		tests := []struct {
			input string
			want  int
		}{
			{"1e39", RangeOverflow},
			{"-1e39", RangeUnderflow},
			{"4e38", RangeOverflow},
			{"-4e38", RangeUnderflow},
			{"1e400", RangeOverflow},
			{"-1e400", RangeUnderflow},
		}
		for _, tt := range tests {
			got, n, err := ParseFloat32([]byte(tt.input))
			if err != nil || n != len(tt.input) {
				t.Errorf("ParseFloat32(%q) = %v bytes, err %v, want full parse", tt.input, n, err)
				continue
			}
			if !isInf32(got) {
				t.Errorf("ParseFloat32(%q) = %v, want an infinity", tt.input, got)
			}
			if r := RangeError32(got); r != tt.want {
				t.Errorf("RangeError32(ParseFloat32(%q)) = %v, want %v", tt.input, r, tt.want)
			}
		}
	})

	t.Run("boundary artifact", func(t *testing.T) {
		// These parse to a 64-bit value exactly on the float32
		// overflow boundary, where the infinity may stem from 64-bit
		// rounding alone. The value is the correctly signed infinity
		// but the consumed length is 0: not trustworthy as a float32.
		tests := []struct {
			input string
			want  float32
		}{
			{"3.402823567797336615e38", float32(math.Inf(1))},
			{"-3.402823567797336615e38", float32(math.Inf(-1))},
		}
		for _, tt := range tests {
			got, n, err := ParseFloat32([]byte(tt.input))
			if err != nil {
				t.Errorf("ParseFloat32(%q) failed: %v", tt.input, err)
				continue
			}
			if n != 0 {
				t.Errorf("ParseFloat32(%q) consumed %v bytes, want 0 (untrusted narrowing)", tt.input, n)
			}
			if math.Float32bits(got) != math.Float32bits(tt.want) {
				t.Errorf("ParseFloat32(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	})

	t.Run("nomatch and syntax", func(t *testing.T) {
		if f, n, err := ParseFloat32([]byte("abc")); f != 0 || n != 0 || err != nil {
			t.Errorf("ParseFloat32(%q) = %v, %v, %v, want 0, 0, nil", "abc", f, n, err)
		}
		if _, n, err := ParseFloat32([]byte("1e+")); n != 0 || !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseFloat32(%q) = %v bytes, err %v, want ErrSyntax", "1e+", n, err)
		}
	})
}

func TestMustParseFloat64(t *testing.T) {
	if got := MustParseFloat64("0x1.8p3"); got != 12 {
		t.Errorf("MustParseFloat64(%q) = %v, want 12", "0x1.8p3", got)
	}
	for _, s := range []string{"abc", "1e", "1.5x", ""} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MustParseFloat64(%q) did not panic", s)
				}
			}()
			MustParseFloat64(s)
		}()
	}
}

func TestMustParseFloat32(t *testing.T) {
	if got := MustParseFloat32("-2.5"); got != -2.5 {
		t.Errorf("MustParseFloat32(%q) = %v, want -2.5", "-2.5", got)
	}
	for _, s := range []string{"abc", "1e", "", "3.402823567797336615e38"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("MustParseFloat32(%q) did not panic", s)
				}
			}()
			MustParseFloat32(s)
		}()
	}
}

func FuzzParseFloat64_RoundTrip(f *testing.F) {
	for _, bits := range []uint64{
		0x0000000000000000, // +0
		0x8000000000000000, // -0
		0x0000000000000001, // smallest denormal
		0x000FFFFFFFFFFFFF, // largest denormal
		0x0010000000000000, // smallest normal
		0x3FF0000000000000, // 1
		0x4008000000000000, // 3
		0x7FEFFFFFFFFFFFFF, // largest finite
		0x4330000000000001,
		0xC330000000000001,
	} {
		f.Add(bits)
	}

	f.Fuzz(func(t *testing.T, bits uint64) {
		want := math.Float64frombits(bits)
		if math.IsNaN(want) || math.IsInf(want, 0) {
			t.Skip()
		}
		s := strconv.FormatFloat(want, 'g', -1, 64)
		got, n, err := ParseFloat64([]byte(s))
		if err != nil {
			t.Fatalf("ParseFloat64(%q) failed: %v", s, err)
		}
		if n != len(s) {
			t.Fatalf("ParseFloat64(%q) consumed %v bytes, want %v", s, n, len(s))
		}
		if math.Float64bits(got) != bits {
			t.Errorf("ParseFloat64(%q) = %x, want %x", s, math.Float64bits(got), bits)
		}
	})
}

var benchSink float64

func BenchmarkParseFloat64(b *testing.B) {
	inputs := [][]byte{
		[]byte("0"),
		[]byte("-1.25e-2"),
		[]byte("3.141592653589793"),
		[]byte("2.2250738585072011e-308"),
		[]byte("123456789012345678901234567890"),
	}
	for _, in := range inputs {
		b.Run(string(in), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSink, _, _ = ParseFloat64(in)
			}
		})
	}
}
