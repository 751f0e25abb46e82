package btree

import (
	"cmp"
)

// Tree is a persistent sorted map from K to V.
//
// A Tree is a mutable handle onto an immutable page tree: in-place
// operations (Set, Delete, Drop, Take, Clear) replace the handle's root,
// pure operations (Updated, Removed, Cleared) return a new handle and leave
// the receiver untouched. Trees must be created with New or NewOrdered.
//
//	Operation           |   Cost
//	--------------------+-----------
//	Get / Has           |   O(log n)
//	GetEntry / IndexOf  |   O(log n)
//	Set / Delete        |   O(log n)
//	Drop / Take         |   O(log n)
//	Clone               |   O(1)
type Tree[K, V any] struct {
	ctx  *treeContext[K, V]
	root page[K, V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx := newContext(cfg)
	return &Tree[K, V]{ctx: ctx, root: ctx.empty}, nil
}

// NewOrdered creates an empty tree for naturally ordered keys, using the
// default split policy.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	t, err := New(Config[K, V]{Compare: cmp.Compare[K]})
	assert(err == nil, "NewOrdered: default configuration rejected")
	return t
}

// Clone returns a snapshot of the tree in O(1). Clone and receiver share all
// pages; later mutations of either are invisible to the other.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root.isEmpty()
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the number of page levels, where 0 means empty and 1 means
// a leaf root.
func (t *Tree[K, V]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.height()
}

// Set associates value with key.
//
// Writing a value equal to the stored one leaves the tree unchanged.
func (t *Tree[K, V]) Set(key K, value V) {
	oldRoot := t.root
	newRoot := oldRoot.updated(key, value, t.ctx)
	if newRoot == oldRoot {
		return
	}
	if newRoot.size() > oldRoot.size() {
		if b := newRoot.balanced(t.ctx); b != newRoot {
			tracer().Debugf("btree: root split at arity %d", newRoot.arity())
			newRoot = b
		}
	}
	t.root = newRoot
}

// Delete removes key and reports whether it was present.
func (t *Tree[K, V]) Delete(key K) bool {
	oldRoot := t.root
	newRoot := oldRoot.removed(key, t.ctx)
	if newRoot == oldRoot {
		return false
	}
	t.root = newRoot
	return true
}

// Drop removes the first lower entries.
func (t *Tree[K, V]) Drop(lower int) {
	t.root = t.root.drop(lower, t.ctx)
}

// Take keeps the first upper entries and removes the rest.
func (t *Tree[K, V]) Take(upper int) {
	t.root = t.root.take(upper, t.ctx)
}

// Clear removes all entries.
func (t *Tree[K, V]) Clear() {
	if !t.root.isEmpty() {
		tracer().Debugf("btree: clearing %d entries", t.root.size())
	}
	t.root = t.ctx.empty
}

// Updated returns a tree with value associated with key.
func (t *Tree[K, V]) Updated(key K, value V) *Tree[K, V] {
	cloned := t.Clone()
	cloned.Set(key, value)
	return cloned
}

// Removed returns a tree without key.
func (t *Tree[K, V]) Removed(key K) *Tree[K, V] {
	cloned := t.Clone()
	cloned.Delete(key)
	return cloned
}

// Cleared returns an empty tree with the receiver's configuration.
func (t *Tree[K, V]) Cleared() *Tree[K, V] {
	return &Tree[K, V]{ctx: t.ctx, root: t.ctx.empty}
}
