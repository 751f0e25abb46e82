package stree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("stree: invalid configuration")
	// ErrIndexOutOfBounds is returned by mutations addressing a position
	// outside of the sequence.
	ErrIndexOutOfBounds = errors.New("stree: index out of bounds")
	// ErrUnknownIdentity is returned by mutations addressing an element by an
	// identity which is not part of the sequence.
	ErrUnknownIdentity = fmt.Errorf("%w: unknown identity", ErrIndexOutOfBounds)
	// ErrCorruptTree signals a violated structural invariant, reported by Check.
	ErrCorruptTree = errors.New("stree: structural invariant violated")
)

func indexError(index, limit int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfBounds, index, limit)
}
