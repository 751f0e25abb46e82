package btree

import (
	"iter"

	"github.com/npillmayer/ptree/cursor"
)

// Entries returns a cursor positioned before the first entry.
//
// Cursors are bound to the snapshot they were created from; later mutations
// of the tree do not affect them. They are read-only: Set and Delete return
// cursor.ErrImmutable.
func (t *Tree[K, V]) Entries() cursor.Cursor[Entry[K, V]] {
	return t.root.entries()
}

// EntriesFrom returns a cursor positioned before the entry of rank index.
func (t *Tree[K, V]) EntriesFrom(index int) cursor.Cursor[Entry[K, V]] {
	c := t.root.entries()
	c.Skip(index)
	return c
}

// ReverseEntries returns a cursor yielding entries in descending key order.
func (t *Tree[K, V]) ReverseEntries() cursor.Cursor[Entry[K, V]] {
	return cursor.Reverse(t.root.reverseEntries())
}

// Keys returns a cursor over the keys in ascending order.
func (t *Tree[K, V]) Keys() cursor.Cursor[K] {
	return cursor.Map(t.Entries(), func(e Entry[K, V]) K { return e.Key })
}

// Values returns a cursor over the values in ascending key order.
func (t *Tree[K, V]) Values() cursor.Cursor[V] {
	return cursor.Map(t.Entries(), func(e Entry[K, V]) V { return e.Value })
}

// All returns an iterator over all entries in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	root := t.root
	return func(yield func(K, V) bool) {
		root.forEach(yield)
	}
}

// Backward returns an iterator over all entries in descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	root := t.root
	return func(yield func(K, V) bool) {
		for e := range cursor.Backward(root.reverseEntries()) {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// ForEach visits all entries depth-first in ascending key order.
//
// Iteration stops early if fn returns false, in which case ForEach returns
// false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) bool {
	if fn == nil {
		return true
	}
	return t.root.forEach(fn)
}

// Search visits entries in ascending key order and returns the first result
// fn reports as found.
func Search[K, V, R any](t *Tree[K, V], fn func(key K, value V) (R, bool)) (R, bool) {
	var result R
	var found bool
	t.root.forEach(func(k K, v V) bool {
		result, found = fn(k, v)
		return !found
	})
	return result, found
}
