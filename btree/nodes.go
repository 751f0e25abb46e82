package btree

import "github.com/npillmayer/ptree/cursor"

// Entry is a key/value pair of a sorted map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// page is the contract of leaves and internal nodes.
//
// Operations returning a page return the receiver itself if nothing
// changed. A page reduced to emptiness is always replaced by the context's
// canonical empty leaf.
type page[K, V any] interface {
	arity() int
	size() int
	isEmpty() bool
	isLeaf() bool
	height() int
	minKey() K
	maxKey() K
	// foldValue returns the memoized fold of the subtree, if it is valid.
	foldValue() (any, bool)

	has(key K, ctx *treeContext[K, V]) bool
	get(key K, ctx *treeContext[K, V]) (V, bool)
	getEntry(index int) (Entry[K, V], bool)
	indexOf(key K, ctx *treeContext[K, V]) int
	firstEntry() (Entry[K, V], bool)
	lastEntry() (Entry[K, V], bool)
	nextEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool)
	previousEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool)

	updated(key K, value V, ctx *treeContext[K, V]) page[K, V]
	removed(key K, ctx *treeContext[K, V]) page[K, V]
	drop(lower int, ctx *treeContext[K, V]) page[K, V]
	take(upper int, ctx *treeContext[K, V]) page[K, V]
	balanced(ctx *treeContext[K, V]) page[K, V]
	split(index int) page[K, V]
	splitLeft(index int) page[K, V]
	splitRight(index int) page[K, V]
	reduced(identity any, accumulator func(any, V) any, combiner func(any, any) any) page[K, V]

	entries() cursor.Cursor[Entry[K, V]]
	reverseEntries() cursor.Cursor[Entry[K, V]]
	forEach(fn func(K, V) bool) bool
}

// entryPages are the cursor hooks for walking the children of a node.
type entryPages[K, V any] struct{}

func (entryPages[K, V]) PageSize(p page[K, V]) int {
	return p.size()
}

func (entryPages[K, V]) PageCursor(p page[K, V]) cursor.Cursor[Entry[K, V]] {
	return p.entries()
}

func (entryPages[K, V]) ReversePageCursor(p page[K, V]) cursor.Cursor[Entry[K, V]] {
	return p.reverseEntries()
}
