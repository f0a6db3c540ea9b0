package agg

import "math/big"

// BigSum aggregates arbitrary precision integers by addition.
//
// *big.Int values are mutable, so trees holding them should be configured
// with CloneBig for both defensive copies and results.
type BigSum struct{}

// Zero returns a new 0.
func (BigSum) Zero() *big.Int { return new(big.Int) }

// Add returns a new integer left + right. A nil operand counts as 0.
func (BigSum) Add(left, right *big.Int) *big.Int {
	sum := new(big.Int)
	if left != nil {
		sum.Set(left)
	}
	if right != nil {
		sum.Add(sum, right)
	}
	return sum
}

// CloneBig returns a deep copy of x.
func CloneBig(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}

// BigEqual compares two integers numerically. nil equals 0.
func BigEqual(a, b *big.Int) bool {
	if a == nil {
		a = new(big.Int)
	}
	if b == nil {
		b = new(big.Int)
	}
	return a.Cmp(b) == 0
}
