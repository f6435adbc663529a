package radix

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedRadix is returned for radices without a table entry,
	// including every value outside [MinRadix, MaxRadix].
	ErrUnsupportedRadix = errors.New("radix: unsupported radix")

	// ErrInvalidDigit is the match target for *DigitError values.
	ErrInvalidDigit = errors.New("radix: invalid digit")

	// ErrEmptyNumeral is returned when a numeral has no characters.
	ErrEmptyNumeral = errors.New("radix: empty numeral")

	// ErrNilValue is returned when a nil *big.Int is passed as a value.
	ErrNilValue = errors.New("radix: nil decimal value")

	// ErrNegativeValue is returned when a negative value is rendered as a
	// bare numeral. Signed values go through two's-complement encoding.
	ErrNegativeValue = errors.New("radix: negative value has no unsigned numeral")
)

// DigitError reports a character that is not a digit of the target radix.
type DigitError struct {
	Char     byte
	Radix    int
	Position int // 1-based position within the numeral, 0 when not positional
}

func (e *DigitError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("radix: %q at position %d is not a digit in radix %d", e.Char, e.Position, e.Radix)
	}
	return fmt.Sprintf("radix: %q is not a digit in radix %d", e.Char, e.Radix)
}

// Unwrap lets errors.Is(err, ErrInvalidDigit) match any *DigitError.
func (e *DigitError) Unwrap() error { return ErrInvalidDigit }
