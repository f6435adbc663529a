package twoscomp_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"numsys-api/internal/twoscomp"
)

func TestEncodeKnownPatterns(t *testing.T) {
	tests := []struct {
		value int64
		width int
		bits  string
		hex   string
		sign  int
	}{
		{5, 8, "00000101", "05", 0},
		{-1, 8, "11111111", "FF", 1},
		{0, 8, "00000000", "00", 0},
		{127, 8, "01111111", "7F", 0},
		{-128, 8, "10000000", "80", 1},
		{-1, 16, "1111111111111111", "FFFF", 1},
		{-300, 16, "1111111011010100", "FED4", 1},
		{1, 32, "0" + strings.Repeat("0", 30) + "1", "00000001", 0},
		{-1, 64, strings.Repeat("1", 64), "FFFFFFFFFFFFFFFF", 1},
	}
	for _, tc := range tests {
		res, err := twoscomp.Encode(tc.value, tc.width)
		require.NoError(t, err, "%d in %d bits", tc.value, tc.width)
		require.Equal(t, tc.bits, res.Bits, "%d in %d bits", tc.value, tc.width)
		require.Equal(t, tc.hex, res.Hex, "%d in %d bits", tc.value, tc.width)
		require.Equal(t, tc.sign, res.SignBit, "%d in %d bits", tc.value, tc.width)
		require.Len(t, res.Bits, tc.width)
	}
}

func TestEncodeReportsRange(t *testing.T) {
	res, err := twoscomp.Encode(0, 8)
	require.NoError(t, err)
	require.Equal(t, int64(-128), res.MinValue)
	require.Equal(t, int64(127), res.MaxValue)

	res, err = twoscomp.Encode(0, 64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), res.MinValue)
	require.Equal(t, int64(math.MaxInt64), res.MaxValue)
}

func TestEncodeNegationTrace(t *testing.T) {
	res, err := twoscomp.Encode(-1, 8)
	require.NoError(t, err)
	require.Equal(t, "00000001", res.MagnitudeBits)
	require.Equal(t, "11111110", res.OnesComplement)
	require.Equal(t, "11111111", res.Bits)

	res, err = twoscomp.Encode(-5, 8)
	require.NoError(t, err)
	require.Equal(t, "00000101", res.MagnitudeBits)
	require.Equal(t, "11111010", res.OnesComplement)
	require.Equal(t, "11111011", res.Bits)

	res, err = twoscomp.Encode(5, 8)
	require.NoError(t, err)
	require.Empty(t, res.MagnitudeBits)
	require.Empty(t, res.OnesComplement)
}

func TestEncodeMinInt64(t *testing.T) {
	res, err := twoscomp.Encode(math.MinInt64, 64)
	require.NoError(t, err)
	require.Equal(t, "1"+strings.Repeat("0", 63), res.Bits)
	require.Equal(t, "8000000000000000", res.Hex)
	require.Equal(t, "1"+strings.Repeat("0", 63), res.MagnitudeBits)
	require.Equal(t, "0"+strings.Repeat("1", 63), res.OnesComplement)
}

func TestEncodeOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		value int64
		width int
	}{
		{128, 8},
		{-129, 8},
		{32768, 16},
		{-32769, 16},
		{2147483648, 32},
		{-2147483649, 32},
	} {
		_, err := twoscomp.Encode(tc.value, tc.width)
		require.ErrorIs(t, err, twoscomp.ErrOutOfRange, "%d in %d bits", tc.value, tc.width)

		var oor *twoscomp.OutOfRangeError
		require.ErrorAs(t, err, &oor)
		require.Equal(t, tc.value, oor.Value)
		require.Equal(t, tc.width, oor.BitWidth)
	}
}

func TestEncodeRejectsBadWidth(t *testing.T) {
	for _, w := range []int{0, 1, 7, 12, 24, 63, 128, -8} {
		_, err := twoscomp.Encode(1, w)
		require.ErrorIs(t, err, twoscomp.ErrBitWidth, "width %d", w)
	}
}

func TestDecodeKnownPatterns(t *testing.T) {
	v, err := twoscomp.Decode("11111111", 8)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	v, err = twoscomp.Decode("00000101", 8)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)

	v, err = twoscomp.Decode("10000000", 8)
	require.NoError(t, err)
	require.Equal(t, int64(-128), v)

	v, err = twoscomp.Decode(strings.Repeat("1", 64), 64)
	require.NoError(t, err)
	require.Equal(t, int64(-1), v)

	v, err = twoscomp.Decode("1"+strings.Repeat("0", 63), 64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}

func TestDecodeRequiresExactWidth(t *testing.T) {
	_, err := twoscomp.Decode("0101", 8)
	require.ErrorIs(t, err, twoscomp.ErrBadBits)

	_, err = twoscomp.Decode("000000101", 8)
	require.ErrorIs(t, err, twoscomp.ErrBadBits)

	_, err = twoscomp.Decode("0000000x", 8)
	require.ErrorIs(t, err, twoscomp.ErrBadBits)

	_, err = twoscomp.Decode("", 8)
	require.ErrorIs(t, err, twoscomp.ErrBadBits)

	_, err = twoscomp.Decode("0101", 4)
	require.ErrorIs(t, err, twoscomp.ErrBitWidth)
}

func TestDecodeInvertsEncode(t *testing.T) {
	for _, width := range []int{8, 16, 32, 64} {
		res, err := twoscomp.Encode(0, width)
		require.NoError(t, err)
		samples := []int64{0, 1, -1, 42, -42, res.MinValue, res.MaxValue, res.MinValue + 1, res.MaxValue - 1}
		for _, v := range samples {
			res, err := twoscomp.Encode(v, width)
			require.NoError(t, err)
			got, err := twoscomp.Decode(res.Bits, width)
			require.NoError(t, err)
			require.Equal(t, v, got, "%d in %d bits", v, width)
		}
	}
}
