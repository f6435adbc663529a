package radix

import "math/big"

// Conversion is the outcome of a full numeral conversion between two radices.
type Conversion struct {
	Input     string
	FromRadix int
	ToRadix   int
	Decimal   *big.Int
	Output    string
}

// ToDecimal interprets numeral in radix r and returns its value. Evaluation
// is left-to-right Horner accumulation, so numerals of any length stay exact:
// a 64-character binary string overflows no machine word here.
//
// The numeral is read case-insensitively. An empty numeral yields
// ErrEmptyNumeral; a character outside r's alphabet yields a *DigitError
// carrying the character and its 1-based position.
func ToDecimal(numeral string, r int) (*big.Int, error) {
	alphabet, err := Alphabet(r)
	if err != nil {
		return nil, err
	}
	if numeral == "" {
		return nil, ErrEmptyNumeral
	}

	acc := new(big.Int)
	rb := big.NewInt(int64(r))
	d := new(big.Int)
	for i := 0; i < len(numeral); i++ {
		v, ok := digitIndex(alphabet, numeral[i])
		if !ok {
			return nil, &DigitError{Char: numeral[i], Radix: r, Position: i + 1}
		}
		acc.Mul(acc, rb)
		acc.Add(acc, d.SetInt64(int64(v)))
	}
	return acc, nil
}

// FromDecimal renders the non-negative value as a canonical numeral in radix
// r: no leading zeros, zero itself as "0", digits from r's alphabet. Negative
// values are out of contract and yield ErrNegativeValue.
func FromDecimal(value *big.Int, r int) (string, error) {
	alphabet, err := Alphabet(r)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", ErrNilValue
	}
	if value.Sign() < 0 {
		return "", ErrNegativeValue
	}
	return divideDown(value, r, alphabet, nil), nil
}

// Convert runs ToDecimal then FromDecimal and bundles the results.
func Convert(numeral string, from, to int) (*Conversion, error) {
	// Validate the target radix before doing any work so a bad "to" fails
	// even when the numeral itself is unconvertible.
	if _, err := Alphabet(to); err != nil {
		return nil, err
	}
	dec, err := ToDecimal(numeral, from)
	if err != nil {
		return nil, err
	}
	out, err := FromDecimal(dec, to)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		Input:     numeral,
		FromRadix: from,
		ToRadix:   to,
		Decimal:   dec,
		Output:    out,
	}, nil
}

// divideDown is the repeated-division loop shared by FromDecimal and
// ExplainFromDecimal. observe, when non-nil, receives each division in the
// order performed: the dividend, the quotient that replaces it, and the
// remainder digit. The returned numeral is the remainders read in reverse.
func divideDown(value *big.Int, r int, alphabet string, observe func(dividend, quotient *big.Int, remainder int)) string {
	if value.Sign() == 0 {
		return "0"
	}

	rb := big.NewInt(int64(r))
	rem := new(big.Int)
	v := new(big.Int).Set(value)
	out := make([]byte, 0, 8)
	for v.Sign() > 0 {
		var dividend *big.Int
		if observe != nil {
			dividend = new(big.Int).Set(v)
		}
		v.QuoRem(v, rb, rem)
		d := int(rem.Int64())
		if observe != nil {
			observe(dividend, new(big.Int).Set(v), d)
		}
		out = append(out, alphabet[d])
	}

	// Digits were produced least-significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
