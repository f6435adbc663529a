package radix

import "math/big"

// PositionTerm records the contribution of one digit position when a numeral
// is expanded into positional-notation terms.
type PositionTerm struct {
	Position   int      // 1-based, leftmost digit first
	Digit      string   // the digit in canonical (uppercase) form
	DigitValue int      // 0-based value of the digit
	Power      int      // exponent of the radix at this position
	Weight     *big.Int // radix^Power
	Term       *big.Int // DigitValue × Weight
}

// ToDecimalSteps is the full positional expansion of a numeral. Sum always
// equals ToDecimal's result for the same input.
type ToDecimalSteps struct {
	Steps []PositionTerm
	Sum   *big.Int
}

// DivisionStep records one division of the repeated-division rendering, in
// the order the divisions are performed.
type DivisionStep struct {
	Step      int // 1-based
	Dividend  *big.Int
	Quotient  *big.Int
	Remainder int
	Digit     string
}

// FromDecimalSteps is the repeated-division trace of rendering a value.
// Reading the step digits in reverse order of recording yields Numeral, which
// always equals FromDecimal's result for the same input.
type FromDecimalSteps struct {
	Steps   []DivisionStep
	Numeral string
}

// ExplainToDecimal re-derives ToDecimal's arithmetic as explicit positional
// terms, with powers decreasing from len(numeral)-1 down to 0. Digits resolve
// through the same table lookup as ToDecimal, so the expansion cannot drift
// from the conversion it explains; errors match ToDecimal's exactly.
func ExplainToDecimal(numeral string, r int) (*ToDecimalSteps, error) {
	alphabet, err := Alphabet(r)
	if err != nil {
		return nil, err
	}
	if numeral == "" {
		return nil, ErrEmptyNumeral
	}

	rb := big.NewInt(int64(r))
	sum := new(big.Int)
	steps := make([]PositionTerm, 0, len(numeral))
	for i := 0; i < len(numeral); i++ {
		v, ok := digitIndex(alphabet, numeral[i])
		if !ok {
			return nil, &DigitError{Char: numeral[i], Radix: r, Position: i + 1}
		}
		power := len(numeral) - 1 - i
		weight := new(big.Int).Exp(rb, big.NewInt(int64(power)), nil)
		term := new(big.Int).Mul(big.NewInt(int64(v)), weight)
		sum.Add(sum, term)
		steps = append(steps, PositionTerm{
			Position:   i + 1,
			Digit:      string(alphabet[v]),
			DigitValue: v,
			Power:      power,
			Weight:     weight,
			Term:       term,
		})
	}
	return &ToDecimalSteps{Steps: steps, Sum: sum}, nil
}

// ExplainFromDecimal re-derives FromDecimal's repeated divisions, first
// division first. Zero produces no steps and the canonical numeral "0".
func ExplainFromDecimal(value *big.Int, r int) (*FromDecimalSteps, error) {
	alphabet, err := Alphabet(r)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, ErrNilValue
	}
	if value.Sign() < 0 {
		return nil, ErrNegativeValue
	}

	var steps []DivisionStep
	numeral := divideDown(value, r, alphabet, func(dividend, quotient *big.Int, remainder int) {
		steps = append(steps, DivisionStep{
			Step:      len(steps) + 1,
			Dividend:  dividend,
			Quotient:  quotient,
			Remainder: remainder,
			Digit:     string(alphabet[remainder]),
		})
	})
	return &FromDecimalSteps{Steps: steps, Numeral: numeral}, nil
}
