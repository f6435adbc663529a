// Package ieee754 encodes floating-point values into their IEEE 754 binary32
// and binary64 bit layouts and decomposes the raw patterns into sign,
// exponent and mantissa fields.
package ieee754

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Width selects the IEEE 754 interchange format.
type Width string

const (
	// Single is binary32: 1 sign bit, 8 exponent bits, 23 mantissa bits, bias 127.
	Single Width = "single"
	// Double is binary64: 1 sign bit, 11 exponent bits, 52 mantissa bits, bias 1023.
	Double Width = "double"
)

var (
	// ErrUnknownWidth is returned for width classes other than Single and Double.
	ErrUnknownWidth = errors.New("ieee754: unknown width class")

	// ErrFloatParse is returned when an input string is not a floating literal.
	ErrFloatParse = errors.New("ieee754: not a floating-point literal")

	// ErrBadBits is returned when decode receives malformed bit fields.
	ErrBadBits = errors.New("ieee754: malformed bit fields")
)

// layout holds the fixed field geometry of one width class.
type layout struct {
	total    int // bits overall
	exponent int
	mantissa int
	bias     int
}

var layouts = map[Width]layout{
	Single: {total: 32, exponent: 8, mantissa: 23, bias: 127},
	Double: {total: 64, exponent: 11, mantissa: 52, bias: 1023},
}

// ParseWidth maps the wire names "single" and "double" onto a Width.
func ParseWidth(s string) (Width, error) {
	w := Width(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := layouts[w]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWidth, s)
	}
	return w, nil
}

// ParseValue parses a decimal floating-point literal. It accepts everything
// strconv does for 64-bit floats, including "inf" and "nan" spellings.
func ParseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFloatParse, s)
	}
	return v, nil
}

// Decomposition is the bit-level anatomy of one encoded value.
//
// Mantissa renders the normalized "1.<mantissa bits>" form with the implicit
// leading 1 assumed unconditionally; for zeros, subnormals, infinities and
// NaN that reading is a fiction, but the bit fields themselves are exact for
// every input.
type Decomposition struct {
	Width            Width   `json:"format"`
	Value            float64 `json:"value"`
	Bits             string  `json:"bits"` // full pattern, sign bit first
	SignBit          int     `json:"sign_bit"`
	ExponentBits     string  `json:"exponent_bits"`
	MantissaBits     string  `json:"mantissa_bits"`
	BiasedExponent   int     `json:"biased_exponent"`
	UnbiasedExponent int     `json:"unbiased_exponent"`
	Mantissa         string  `json:"mantissa"` // "1." + MantissaBits
	Hex              string  `json:"hex"`      // uppercase big-endian bytes
}

// Encode reproduces the platform bit pattern of value in the requested width
// class and splits it into sign, exponent and mantissa. Narrowing to Single
// uses Go's float64→float32 conversion, which rounds to nearest-even.
func Encode(value float64, w Width) (*Decomposition, error) {
	lay, ok := layouts[w]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidth, w)
	}

	var raw uint64
	buf := make([]byte, lay.total/8)
	switch w {
	case Single:
		b32 := math.Float32bits(float32(value))
		raw = uint64(b32)
		binary.BigEndian.PutUint32(buf, b32)
	case Double:
		raw = math.Float64bits(value)
		binary.BigEndian.PutUint64(buf, raw)
	}

	bits := fmt.Sprintf("%0*b", lay.total, raw)
	biased := int((raw >> uint(lay.mantissa)) & ((1 << uint(lay.exponent)) - 1))
	mantissaBits := bits[1+lay.exponent:]

	return &Decomposition{
		Width:            w,
		Value:            value,
		Bits:             bits,
		SignBit:          int(raw >> uint(lay.total-1)),
		ExponentBits:     bits[1 : 1+lay.exponent],
		MantissaBits:     mantissaBits,
		BiasedExponent:   biased,
		UnbiasedExponent: biased - lay.bias,
		Mantissa:         "1." + mantissaBits,
		Hex:              strings.ToUpper(hex.EncodeToString(buf)),
	}, nil
}

// Decode rebuilds the floating value from a decomposition's bit fields. Only
// Width, SignBit, ExponentBits and MantissaBits are consulted, so a
// hand-assembled Decomposition decodes fine.
func Decode(d Decomposition) (float64, error) {
	lay, ok := layouts[d.Width]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWidth, d.Width)
	}
	if d.SignBit != 0 && d.SignBit != 1 {
		return 0, fmt.Errorf("%w: sign bit %d", ErrBadBits, d.SignBit)
	}
	if len(d.ExponentBits) != lay.exponent {
		return 0, fmt.Errorf("%w: exponent field must be %d bits, got %d", ErrBadBits, lay.exponent, len(d.ExponentBits))
	}
	if len(d.MantissaBits) != lay.mantissa {
		return 0, fmt.Errorf("%w: mantissa field must be %d bits, got %d", ErrBadBits, lay.mantissa, len(d.MantissaBits))
	}

	exp, err := strconv.ParseUint(d.ExponentBits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: exponent %q", ErrBadBits, d.ExponentBits)
	}
	man, err := strconv.ParseUint(d.MantissaBits, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: mantissa %q", ErrBadBits, d.MantissaBits)
	}

	raw := uint64(d.SignBit)<<uint(lay.total-1) | exp<<uint(lay.mantissa) | man
	if d.Width == Single {
		return float64(math.Float32frombits(uint32(raw))), nil
	}
	return math.Float64frombits(raw), nil
}
