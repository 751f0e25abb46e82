package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrCorruptTree signals a violated structural invariant, reported by Check.
	ErrCorruptTree = errors.New("btree: structural invariant violated")
)
