package agg

import "golang.org/x/exp/constraints"

// Number is the set of types Sum may aggregate.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum aggregates numbers by addition.
type Sum[T Number] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// Add returns left + right.
func (Sum[T]) Add(left, right T) T { return left + right }

// Equal compares two sums for equality.
func Equal[T comparable](a, b T) bool { return a == b }
