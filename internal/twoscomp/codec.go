// Package twoscomp encodes signed integers into fixed-width two's-complement
// bit strings and decodes such strings back into signed integers.
//
// Negative values are represented as the modular complement 2^width + value.
// Alongside the final bit pattern, Encode reports the intermediate steps of
// that negation (magnitude bits and their inversion) so callers can show how
// the pattern was reached.
package twoscomp

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrBitWidth reports a width outside the supported set.
	ErrBitWidth = errors.New("twoscomp: bit width must be 8, 16, 32 or 64")

	// ErrBadBits reports a bit string that is not exactly width binary digits.
	ErrBadBits = errors.New("twoscomp: malformed bit string")

	// ErrOutOfRange is the sentinel wrapped by OutOfRangeError.
	ErrOutOfRange = errors.New("twoscomp: value out of range")
)

// OutOfRangeError reports a value that does not fit the requested width.
type OutOfRangeError struct {
	Value    int64
	BitWidth int
	Min      int64
	Max      int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("twoscomp: %d does not fit in %d bits (range %d..%d)", e.Value, e.BitWidth, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// Result is the fixed-width two's-complement rendering of one signed value.
type Result struct {
	Value    int64  `json:"value"`
	BitWidth int    `json:"bit_width"`
	Bits     string `json:"bits"`
	Hex      string `json:"hex"`
	SignBit  int    `json:"sign_bit"`
	MinValue int64  `json:"min_value"`
	MaxValue int64  `json:"max_value"`

	// MagnitudeBits and OnesComplement trace the negation for a negative
	// value: invert MagnitudeBits, add one, and Bits falls out. Both are
	// empty for non-negative values.
	MagnitudeBits  string `json:"magnitude_bits,omitempty"`
	OnesComplement string `json:"ones_complement,omitempty"`
}

// Encode renders value as a two's-complement bit string of exactly width
// bits. Values outside [-2^(width-1), 2^(width-1)-1] fail with
// OutOfRangeError instead of wrapping.
func Encode(value int64, width int) (*Result, error) {
	if !validWidth(width) {
		return nil, fmt.Errorf("%w: got %d", ErrBitWidth, width)
	}
	min, max := rangeFor(width)
	if value < min || value > max {
		return nil, &OutOfRangeError{Value: value, BitWidth: width, Min: min, Max: max}
	}

	m := mask(width)
	pattern := uint64(value) & m
	res := &Result{
		Value:    value,
		BitWidth: width,
		Bits:     fmt.Sprintf("%0*b", width, pattern),
		Hex:      fmt.Sprintf("%0*X", width/4, pattern),
		SignBit:  int(pattern >> (width - 1)),
		MinValue: min,
		MaxValue: max,
	}
	if value < 0 {
		// Unary negation wraps for the minimum value of each width, but
		// the masked magnitude is still the correct 2^(width-1).
		mag := uint64(-value) & m
		res.MagnitudeBits = fmt.Sprintf("%0*b", width, mag)
		res.OnesComplement = fmt.Sprintf("%0*b", width, ^mag&m)
	}
	return res, nil
}

// Decode is the inverse of Encode: a pattern whose top bit is set reads as
// unsigned(bits) - 2^width. The bit string must be exactly width characters.
func Decode(bits string, width int) (int64, error) {
	if !validWidth(width) {
		return 0, fmt.Errorf("%w: got %d", ErrBitWidth, width)
	}
	if len(bits) != width {
		return 0, fmt.Errorf("%w: want exactly %d bits, got %d", ErrBadBits, width, len(bits))
	}
	raw, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadBits, bits)
	}
	if width < 64 && raw&(uint64(1)<<(width-1)) != 0 {
		raw |= ^mask(width)
	}
	return int64(raw), nil
}

func validWidth(w int) bool {
	switch w {
	case 8, 16, 32, 64:
		return true
	}
	return false
}

func rangeFor(width int) (min, max int64) {
	max = int64(uint64(1)<<(width-1) - 1)
	return -max - 1, max
}

func mask(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return uint64(1)<<width - 1
}
