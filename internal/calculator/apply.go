package calculator

import (
	"errors"
	"fmt"
	"math/big"

	"numsys-api/internal/radix"
)

// Op identifies one of the four arithmetic operations.
type Op string

const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
)

var (
	// ErrUnknownOp reports an operator outside the supported four.
	ErrUnknownOp = errors.New("calculator: unknown operator")

	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("calculator: division by zero")

	// ErrNegativeResult reports an operation whose result cannot be shown.
	// The calculator renders unsigned numerals only, so a negative value is
	// an error state rather than a signed string.
	ErrNegativeResult = errors.New("calculator: negative result")
)

// Apply evaluates op over two decimal operands and renders the result as a
// numeral in the given radix. Division truncates to an integer quotient.
func Apply(op1, op2 *big.Int, op Op, r int) (string, error) {
	result, err := evaluate(op1, op2, op)
	if err != nil {
		return "", err
	}
	return radix.FromDecimal(result, r)
}

// evaluate performs the arithmetic and range checks without rendering.
func evaluate(op1, op2 *big.Int, op Op) (*big.Int, error) {
	result := new(big.Int)
	switch op {
	case OpAdd:
		result.Add(op1, op2)
	case OpSubtract:
		result.Sub(op1, op2)
	case OpMultiply:
		result.Mul(op1, op2)
	case OpDivide:
		if op2.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		result.Quo(op1, op2)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	if result.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeResult, result)
	}
	return result, nil
}
