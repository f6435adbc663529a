package radix_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"numsys-api/internal/radix"
)

func TestToDecimalKnownValues(t *testing.T) {
	tests := []struct {
		numeral string
		r       int
		want    int64
	}{
		{"0", 2, 0},
		{"1", 2, 1},
		{"10", 2, 2},
		{"11", 2, 3},
		{"101", 2, 5},
		{"1010", 2, 10},
		{"1111", 2, 15},
		{"11111111", 2, 255},
		{"1111111111111111", 2, 65535},
		{"0", 8, 0},
		{"7", 8, 7},
		{"10", 8, 8},
		{"17", 8, 15},
		{"77", 8, 63},
		{"377", 8, 255},
		{"777", 8, 511},
		{"1000", 8, 512},
		{"0", 16, 0},
		{"9", 16, 9},
		{"A", 16, 10},
		{"F", 16, 15},
		{"10", 16, 16},
		{"1A", 16, 26},
		{"FF", 16, 255},
		{"1AB", 16, 427},
		{"DEAD", 16, 57005},
		{"BEEF", 16, 48879},
		{"100", 20, 400},
		{"ZZ", 36, 1295},
	}
	for _, tc := range tests {
		got, err := radix.ToDecimal(tc.numeral, tc.r)
		require.NoError(t, err, "%s in radix %d", tc.numeral, tc.r)
		require.Zero(t, got.Cmp(big.NewInt(tc.want)), "%s in radix %d: got %s", tc.numeral, tc.r, got)
	}
}

func TestToDecimalCaseInsensitive(t *testing.T) {
	want := big.NewInt(3735928559)
	for _, numeral := range []string{"deadbeef", "DEADBEEF", "DeAdBeEf"} {
		got, err := radix.ToDecimal(numeral, 16)
		require.NoError(t, err)
		require.Zero(t, got.Cmp(want), "%s: got %s", numeral, got)
	}
}

func TestToDecimalRejectsForeignDigits(t *testing.T) {
	tests := []struct {
		numeral  string
		r        int
		char     byte
		position int
	}{
		{"2", 2, '2', 1},
		{"8", 8, '8', 1},
		{"G", 16, 'G', 1},
		{"Z", 10, 'Z', 1},
		{"A", 2, 'A', 1},
		{"102", 2, '2', 3},
		{"12A", 10, 'A', 3},
		{"F00D!", 16, '!', 5},
	}
	for _, tc := range tests {
		_, err := radix.ToDecimal(tc.numeral, tc.r)
		require.ErrorIs(t, err, radix.ErrInvalidDigit, "%s in radix %d", tc.numeral, tc.r)

		var de *radix.DigitError
		require.True(t, errors.As(err, &de))
		require.Equal(t, tc.char, de.Char)
		require.Equal(t, tc.position, de.Position)
	}
}

func TestToDecimalEmptyAndUnsupported(t *testing.T) {
	_, err := radix.ToDecimal("", 10)
	require.ErrorIs(t, err, radix.ErrEmptyNumeral)

	// The radix is validated before the numeral is inspected.
	_, err = radix.ToDecimal("", 17)
	require.ErrorIs(t, err, radix.ErrUnsupportedRadix)
	_, err = radix.ToDecimal("123", 19)
	require.ErrorIs(t, err, radix.ErrUnsupportedRadix)
}

func TestFromDecimalKnownValues(t *testing.T) {
	tests := []struct {
		value int64
		r     int
		want  string
	}{
		{0, 2, "0"},
		{1, 2, "1"},
		{2, 2, "10"},
		{5, 2, "101"},
		{10, 2, "1010"},
		{255, 2, "11111111"},
		{1023, 2, "1111111111"},
		{0, 8, "0"},
		{8, 8, "10"},
		{15, 8, "17"},
		{63, 8, "77"},
		{255, 8, "377"},
		{512, 8, "1000"},
		{0, 16, "0"},
		{10, 16, "A"},
		{15, 16, "F"},
		{26, 16, "1A"},
		{255, 16, "FF"},
		{427, 16, "1AB"},
		{4095, 16, "FFF"},
		{4096, 16, "1000"},
		{399, 20, "JJ"},
		{1295, 36, "ZZ"},
	}
	for _, tc := range tests {
		got, err := radix.FromDecimal(big.NewInt(tc.value), tc.r)
		require.NoError(t, err, "%d to radix %d", tc.value, tc.r)
		require.Equal(t, tc.want, got, "%d to radix %d", tc.value, tc.r)
	}
}

func TestFromDecimalCanonicalZero(t *testing.T) {
	for _, s := range radix.Systems() {
		got, err := radix.FromDecimal(new(big.Int), s.Radix)
		require.NoError(t, err)
		require.Equal(t, "0", got, "radix %d", s.Radix)
	}
}

func TestFromDecimalContractViolations(t *testing.T) {
	_, err := radix.FromDecimal(big.NewInt(-1), 2)
	require.ErrorIs(t, err, radix.ErrNegativeValue)

	_, err = radix.FromDecimal(nil, 2)
	require.ErrorIs(t, err, radix.ErrNilValue)

	_, err = radix.FromDecimal(big.NewInt(5), 21)
	require.ErrorIs(t, err, radix.ErrUnsupportedRadix)
}

func TestRoundTripAllRadices(t *testing.T) {
	for _, s := range radix.Systems() {
		r := s.Radix
		check := func(n *big.Int) {
			numeral, err := radix.FromDecimal(n, r)
			require.NoError(t, err)
			back, err := radix.ToDecimal(numeral, r)
			require.NoError(t, err)
			require.Zero(t, back.Cmp(n), "radix %d value %s came back as %s", r, n, back)
		}

		for n := int64(0); n <= 10000; n++ {
			check(big.NewInt(n))
		}
		// Boundary powers of the radix.
		rb := big.NewInt(int64(r))
		for _, exp := range []int64{8, 16, 32} {
			p := new(big.Int).Exp(rb, big.NewInt(exp), nil)
			check(new(big.Int).Sub(p, big.NewInt(1)))
			check(p)
			check(new(big.Int).Add(p, big.NewInt(1)))
		}
	}
}

func TestBeyondMachineWordRange(t *testing.T) {
	// 64 ones in binary is 2^64-1, one past uint64 after the round trip below.
	ones := strings.Repeat("1", 64)
	v, err := radix.ToDecimal(ones, 2)
	require.NoError(t, err)
	require.Equal(t, "18446744073709551615", v.String())

	back, err := radix.FromDecimal(v, 2)
	require.NoError(t, err)
	require.Equal(t, ones, back)

	// A 256-bit value survives a detour through base 36.
	big256 := new(big.Int).Lsh(big.NewInt(1), 256)
	numeral, err := radix.FromDecimal(big256, 36)
	require.NoError(t, err)
	round, err := radix.ToDecimal(numeral, 36)
	require.NoError(t, err)
	require.Zero(t, round.Cmp(big256))
}

func TestConvert(t *testing.T) {
	conv, err := radix.Convert("1010", 2, 16)
	require.NoError(t, err)
	require.Equal(t, "1010", conv.Input)
	require.Equal(t, 2, conv.FromRadix)
	require.Equal(t, 16, conv.ToRadix)
	require.Equal(t, "10", conv.Decimal.String())
	require.Equal(t, "A", conv.Output)

	// Direct and via-decimal paths agree.
	viaHex, err := radix.Convert("1000", 10, 16)
	require.NoError(t, err)
	backDec, err := radix.ToDecimal(viaHex.Output, 16)
	require.NoError(t, err)
	direct, err := radix.FromDecimal(backDec, 2)
	require.NoError(t, err)
	want, err := radix.FromDecimal(big.NewInt(1000), 2)
	require.NoError(t, err)
	require.Equal(t, want, direct)

	// An unsupported target radix fails before the numeral is parsed.
	_, err = radix.Convert("notanumber", 10, 17)
	require.ErrorIs(t, err, radix.ErrUnsupportedRadix)

	_, err = radix.Convert("G", 16, 2)
	require.ErrorIs(t, err, radix.ErrInvalidDigit)
}
