package stree

import (
	"slices"

	"github.com/npillmayer/ptree/cursor"
)

// leaf holds a run of consecutive elements of the sequence.
type leaf[I, V any] struct {
	slots  []Entry[I, V]
	fold   any
	folded bool
}

func newLeaf[I, V any](slots []Entry[I, V]) *leaf[I, V] {
	return &leaf[I, V]{slots: slices.Clip(slots)}
}

func (l *leaf[I, V]) arity() int    { return len(l.slots) }
func (l *leaf[I, V]) size() int     { return len(l.slots) }
func (l *leaf[I, V]) isEmpty() bool { return len(l.slots) == 0 }
func (l *leaf[I, V]) isLeaf() bool  { return true }
func (l *leaf[I, V]) height() int   { return 1 }

func (l *leaf[I, V]) foldValue() (any, bool) {
	return l.fold, l.folded
}

func (l *leaf[I, V]) getEntry(index int) (Entry[I, V], bool) {
	if index < 0 || index >= len(l.slots) {
		return Entry[I, V]{}, false
	}
	return l.slots[index], true
}

func (l *leaf[I, V]) firstEntry() (Entry[I, V], bool) {
	return l.getEntry(0)
}

func (l *leaf[I, V]) lastEntry() (Entry[I, V], bool) {
	return l.getEntry(len(l.slots) - 1)
}

func (l *leaf[I, V]) updated(index int, value V, ctx *treeContext[I, V]) page[I, V] {
	if ctx.equal(l.slots[index].Value, value) {
		return l
	}
	slots := slices.Clone(l.slots)
	slots[index].Value = value
	return newLeaf(slots)
}

func (l *leaf[I, V]) inserted(index int, entry Entry[I, V], _ *treeContext[I, V]) page[I, V] {
	return newLeaf(slices.Insert(slices.Clone(l.slots), index, entry))
}

func (l *leaf[I, V]) removed(index int, ctx *treeContext[I, V]) page[I, V] {
	if len(l.slots) == 1 {
		return ctx.empty
	}
	return newLeaf(slices.Delete(slices.Clone(l.slots), index, index+1))
}

func (l *leaf[I, V]) drop(lower int, ctx *treeContext[I, V]) page[I, V] {
	switch {
	case lower <= 0:
		return l
	case lower >= len(l.slots):
		return ctx.empty
	}
	return newLeaf(l.slots[lower:])
}

func (l *leaf[I, V]) take(upper int, ctx *treeContext[I, V]) page[I, V] {
	switch {
	case upper >= len(l.slots):
		return l
	case upper <= 0:
		return ctx.empty
	}
	return newLeaf(l.slots[:upper])
}

func (l *leaf[I, V]) balanced(ctx *treeContext[I, V]) page[I, V] {
	if len(l.slots) > 1 && ctx.pageShouldSplit(l) {
		return l.split(len(l.slots) >> 1)
	}
	return l
}

func (l *leaf[I, V]) split(index int) page[I, V] {
	return newNode([]page[I, V]{l.splitLeft(index), l.splitRight(index)})
}

func (l *leaf[I, V]) splitLeft(index int) page[I, V] {
	return newLeaf(l.slots[:index])
}

func (l *leaf[I, V]) splitRight(index int) page[I, V] {
	return newLeaf(l.slots[index:])
}

func (l *leaf[I, V]) reduced(identity any, accumulator func(any, V) any, _ func(any, any) any) page[I, V] {
	if l.folded || len(l.slots) == 0 {
		return l
	}
	fold := identity
	for _, e := range l.slots {
		fold = accumulator(fold, e.Value)
	}
	return &leaf[I, V]{slots: l.slots, fold: fold, folded: true}
}

func (l *leaf[I, V]) entries() cursor.Cursor[Entry[I, V]] {
	return cursor.Slice(l.slots)
}

func (l *leaf[I, V]) reverseEntries() cursor.Cursor[Entry[I, V]] {
	return cursor.SliceAt(l.slots, len(l.slots))
}

func (l *leaf[I, V]) forEach(fn func(I, V) bool) bool {
	for _, e := range l.slots {
		if !fn(e.ID, e.Value) {
			return false
		}
	}
	return true
}
