/*
Package cursor provides bidirectional cursors over the pages of persistent
trees.

A cursor sits between two elements. Next returns the element after the
cursor and advances, Previous returns the element before it and steps back.
NextIndex and PreviousIndex report the flat logical position.

The Node cursor is the traversal engine shared by all page trees of this
module: it walks an ordered array of child pages, lazily opening a cursor for
one child at a time, and skips whole children in O(1) using their cached
sizes. Collections plug in three hooks (see Pages) and get forward, reverse
and seeking traversal for free.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package cursor

import (
	"errors"
	"iter"
)

var (
	// ErrImmutable signals a mutation through a cursor over immutable data.
	ErrImmutable = errors.New("cursor: cursor is immutable")
	// ErrNoElement signals that a cursor has no current element to operate on.
	ErrNoElement = errors.New("cursor: no current element")
)

// Cursor is a bidirectional cursor over a sequence of T.
//
// Set and Delete operate on the element most recently returned by Next or
// Previous. Cursors over immutable pages return ErrImmutable.
type Cursor[T any] interface {
	HasNext() bool
	NextIndex() int
	Next() (T, bool)
	HasPrevious() bool
	PreviousIndex() int
	Previous() (T, bool)
	// Skip advances the cursor by up to n elements without returning them.
	Skip(n int)
	Set(value T) error
	Delete() error
}

// Seq adapts the remaining forward elements of c to an iterator.
func Seq[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward adapts the elements before c to an iterator running towards the
// start.
func Backward[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Previous()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
