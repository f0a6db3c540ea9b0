package tree23

import "fmt"

// SummaryMonoid defines how values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add must not modify its arguments. The tree always combines values in key
// order, left operand first, so commutativity is not required.
type SummaryMonoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Config configures an ordered aggregate tree.
type Config[K, V any] struct {
	// Compare is a three-way comparison of keys. Required.
	Compare func(a, b K) int
	// Monoid aggregates values up the tree. Required.
	Monoid SummaryMonoid[V]
	// CloneKey returns a deep copy of a key. If nil, keys are copied by
	// assignment, which is sufficient for scalars and strings.
	CloneKey func(K) K
	// CloneValue returns a deep copy of a value. If nil, values are copied by
	// assignment.
	CloneValue func(V) V
}

func identity[T any](x T) T { return x }

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.CloneKey == nil {
		cfg.CloneKey = identity[K]
	}
	if cfg.CloneValue == nil {
		cfg.CloneValue = identity[V]
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparison is required", ErrInvalidConfig)
	}
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
