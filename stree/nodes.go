package stree

import "github.com/npillmayer/ptree/cursor"

// Entry is an element of a sequence together with its identity.
type Entry[I, V any] struct {
	ID    I
	Value V
}

// page is the contract of leaves and internal nodes. Positions are relative
// to the start of the page.
//
// Operations returning a page return the receiver itself if nothing
// changed. A page reduced to emptiness is always replaced by the context's
// canonical empty leaf.
type page[I, V any] interface {
	arity() int
	size() int
	isEmpty() bool
	isLeaf() bool
	height() int
	// foldValue returns the memoized fold of the subtree, if it is valid.
	foldValue() (any, bool)

	getEntry(index int) (Entry[I, V], bool)
	firstEntry() (Entry[I, V], bool)
	lastEntry() (Entry[I, V], bool)

	updated(index int, value V, ctx *treeContext[I, V]) page[I, V]
	inserted(index int, entry Entry[I, V], ctx *treeContext[I, V]) page[I, V]
	removed(index int, ctx *treeContext[I, V]) page[I, V]
	drop(lower int, ctx *treeContext[I, V]) page[I, V]
	take(upper int, ctx *treeContext[I, V]) page[I, V]
	balanced(ctx *treeContext[I, V]) page[I, V]
	split(index int) page[I, V]
	splitLeft(index int) page[I, V]
	splitRight(index int) page[I, V]
	reduced(identity any, accumulator func(any, V) any, combiner func(any, any) any) page[I, V]

	entries() cursor.Cursor[Entry[I, V]]
	reverseEntries() cursor.Cursor[Entry[I, V]]
	forEach(fn func(I, V) bool) bool
}

// entryPages are the cursor hooks for walking the children of a node.
type entryPages[I, V any] struct{}

func (entryPages[I, V]) PageSize(p page[I, V]) int {
	return p.size()
}

func (entryPages[I, V]) PageCursor(p page[I, V]) cursor.Cursor[Entry[I, V]] {
	return p.entries()
}

func (entryPages[I, V]) ReversePageCursor(p page[I, V]) cursor.Cursor[Entry[I, V]] {
	return p.reverseEntries()
}
