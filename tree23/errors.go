package tree23

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("tree23: invalid configuration")
	// ErrInvariant signals a violated structural invariant, as detected by Check.
	ErrInvariant = errors.New("tree23: invariant violated")
)
