// Package radix converts numerals between positional number systems. The
// supported systems live in a fixed table keyed by radix; conversion, digit
// validation and the step-by-step explanations all go through that table, so
// a radix without an entry fails instead of improvising an alphabet.
package radix

import (
	"fmt"
	"sort"
	"strings"
)

// upperDigits is the master digit alphabet; every supported system's alphabet
// is one of its prefixes, so upperDigits[i] always denotes digit value i.
const upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MinRadix and MaxRadix bound the radices a table entry may use.
const (
	MinRadix = 2
	MaxRadix = 36
)

// System describes one supported positional number system.
type System struct {
	Radix  int    `json:"radix"`
	Name   string `json:"name"`
	Digits string `json:"digits"` // ordered alphabet; Digits[i] is the digit of value i
}

// systems is the fixed radix table. The gaps (17-19, 21-35) are deliberate:
// those radices have no entry and every lookup for them fails.
var systems = map[int]System{
	2:  {Radix: 2, Name: "Binary", Digits: upperDigits[:2]},
	3:  {Radix: 3, Name: "Ternary", Digits: upperDigits[:3]},
	4:  {Radix: 4, Name: "Quaternary", Digits: upperDigits[:4]},
	5:  {Radix: 5, Name: "Quinary", Digits: upperDigits[:5]},
	6:  {Radix: 6, Name: "Senary", Digits: upperDigits[:6]},
	7:  {Radix: 7, Name: "Septenary", Digits: upperDigits[:7]},
	8:  {Radix: 8, Name: "Octal", Digits: upperDigits[:8]},
	9:  {Radix: 9, Name: "Nonary", Digits: upperDigits[:9]},
	10: {Radix: 10, Name: "Decimal", Digits: upperDigits[:10]},
	11: {Radix: 11, Name: "Undecimal", Digits: upperDigits[:11]},
	12: {Radix: 12, Name: "Duodecimal", Digits: upperDigits[:12]},
	13: {Radix: 13, Name: "Tridecimal", Digits: upperDigits[:13]},
	14: {Radix: 14, Name: "Tetradecimal", Digits: upperDigits[:14]},
	15: {Radix: 15, Name: "Pentadecimal", Digits: upperDigits[:15]},
	16: {Radix: 16, Name: "Hexadecimal", Digits: upperDigits[:16]},
	20: {Radix: 20, Name: "Vigesimal", Digits: upperDigits[:20]},
	36: {Radix: 36, Name: "Base36", Digits: upperDigits[:36]},
}

// Lookup returns the table entry for radix r, or ErrUnsupportedRadix when r
// has no entry.
func Lookup(r int) (System, error) {
	s, ok := systems[r]
	if !ok {
		return System{}, fmt.Errorf("%w: %d", ErrUnsupportedRadix, r)
	}
	return s, nil
}

// Supported reports whether radix r has a table entry.
func Supported(r int) bool {
	_, ok := systems[r]
	return ok
}

// Alphabet returns the ordered digit alphabet of radix r.
func Alphabet(r int) (string, error) {
	s, err := Lookup(r)
	if err != nil {
		return "", err
	}
	return s.Digits, nil
}

// Systems returns every table entry in ascending radix order.
func Systems() []System {
	out := make([]System, 0, len(systems))
	for _, s := range systems {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Radix < out[j].Radix })
	return out
}

// DigitValue returns the 0-based value of c in radix r's alphabet. Lookup is
// case-insensitive; a character outside the alphabet yields a *DigitError.
func DigitValue(c byte, r int) (int, error) {
	alphabet, err := Alphabet(r)
	if err != nil {
		return 0, err
	}
	v, ok := digitIndex(alphabet, c)
	if !ok {
		return 0, &DigitError{Char: c, Radix: r}
	}
	return v, nil
}

// digitIndex is the single lookup path for digit values: both the converter
// and the explainer resolve characters through it, so they cannot disagree on
// what a digit is worth.
func digitIndex(alphabet string, c byte) (int, bool) {
	i := strings.IndexByte(alphabet, upperByte(c))
	return i, i >= 0
}

func upperByte(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
