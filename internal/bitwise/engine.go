// Package bitwise evaluates a fixed set of bit operations over two
// arbitrary-precision operands: AND, OR and XOR of the pair, a 32-bit-masked
// NOT of each operand, and logical shifts of the first operand by one and two
// places.
package bitwise

import (
	"math/big"
	"strings"
)

// mask32 truncates NOT to the low 32 bits. The truncation keeps complements
// of non-negative operands non-negative and is part of the contract, not a
// general bitwise not.
var mask32 = new(big.Int).SetUint64(0xFFFFFFFF)

// Results holds every operation computed for one operand pair. A and B are
// copies of the inputs so callers can render them alongside the results.
type Results struct {
	A     *big.Int
	B     *big.Int
	And   *big.Int
	Or    *big.Int
	Xor   *big.Int
	NotA  *big.Int
	NotB  *big.Int
	AShl1 *big.Int
	AShr1 *big.Int
	AShl2 *big.Int
	AShr2 *big.Int
}

// ComputeAll evaluates the full operation set. It is total over any pair of
// integers and never modifies its operands.
func ComputeAll(a, b *big.Int) *Results {
	return &Results{
		A:     new(big.Int).Set(a),
		B:     new(big.Int).Set(b),
		And:   new(big.Int).And(a, b),
		Or:    new(big.Int).Or(a, b),
		Xor:   new(big.Int).Xor(a, b),
		NotA:  not32(a),
		NotB:  not32(b),
		AShl1: new(big.Int).Lsh(a, 1),
		AShr1: new(big.Int).Rsh(a, 1),
		AShl2: new(big.Int).Lsh(a, 2),
		AShr2: new(big.Int).Rsh(a, 2),
	}
}

func not32(x *big.Int) *big.Int {
	n := new(big.Int).Not(x)
	return n.And(n, mask32)
}

// Rendering is one value formatted in the three display bases.
type Rendering struct {
	Decimal string `json:"decimal"`
	Binary  string `json:"binary"`
	Hex     string `json:"hex"`
}

// Render formats v for display. Negative values carry a leading minus sign
// in every base.
func Render(v *big.Int) Rendering {
	return Rendering{
		Decimal: v.String(),
		Binary:  v.Text(2),
		Hex:     strings.ToUpper(v.Text(16)),
	}
}
