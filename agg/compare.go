package agg

import "golang.org/x/exp/constraints"

// Compare is a three-way comparison for ordered types, usable as a tree's
// key comparison.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Reverse turns a key comparison into one for descending order.
func Reverse[K any](cmp func(a, b K) int) func(a, b K) int {
	return func(a, b K) int {
		return cmp(b, a)
	}
}
