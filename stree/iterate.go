package stree

import (
	"iter"

	"github.com/npillmayer/ptree/cursor"
)

// Entries returns a cursor positioned before the first element.
//
// Cursors are bound to the snapshot they were created from and are
// read-only: Set and Delete return cursor.ErrImmutable.
func (t *Tree[I, V]) Entries() cursor.Cursor[Entry[I, V]] {
	return t.root.entries()
}

// EntriesFrom returns a cursor positioned before the element at index.
func (t *Tree[I, V]) EntriesFrom(index int) cursor.Cursor[Entry[I, V]] {
	c := t.root.entries()
	c.Skip(index)
	return c
}

// ReverseEntries returns a cursor yielding elements from last to first.
func (t *Tree[I, V]) ReverseEntries() cursor.Cursor[Entry[I, V]] {
	return cursor.Reverse(t.root.reverseEntries())
}

// Values returns a cursor over the values in sequence order.
func (t *Tree[I, V]) Values() cursor.Cursor[V] {
	return cursor.Map(t.Entries(), func(e Entry[I, V]) V { return e.Value })
}

// IDs returns a cursor over the identities in sequence order.
func (t *Tree[I, V]) IDs() cursor.Cursor[I] {
	return cursor.Map(t.Entries(), func(e Entry[I, V]) I { return e.ID })
}

// All returns an iterator over positions and values, like slices.All.
func (t *Tree[I, V]) All() iter.Seq2[int, V] {
	root := t.root
	return func(yield func(int, V) bool) {
		i := 0
		root.forEach(func(_ I, v V) bool {
			if !yield(i, v) {
				return false
			}
			i++
			return true
		})
	}
}

// Backward returns an iterator over positions and values from last to
// first, like slices.Backward.
func (t *Tree[I, V]) Backward() iter.Seq2[int, V] {
	root := t.root
	return func(yield func(int, V) bool) {
		c := root.reverseEntries()
		for c.HasPrevious() {
			i := c.PreviousIndex()
			e, _ := c.Previous()
			if !yield(i, e.Value) {
				return
			}
		}
	}
}

// ForEach visits all elements in sequence order. Iteration stops early if
// fn returns false, in which case ForEach returns false.
func (t *Tree[I, V]) ForEach(fn func(id I, value V) bool) bool {
	if fn == nil {
		return true
	}
	return t.root.forEach(fn)
}
