package btree

import (
	"slices"

	"github.com/npillmayer/ptree/cursor"
)

// leaf holds entries sorted ascending by key, without duplicate keys.
type leaf[K, V any] struct {
	slots  []Entry[K, V]
	fold   any
	folded bool
}

func newLeaf[K, V any](slots []Entry[K, V]) *leaf[K, V] {
	return &leaf[K, V]{slots: slices.Clip(slots)}
}

func (l *leaf[K, V]) arity() int    { return len(l.slots) }
func (l *leaf[K, V]) size() int     { return len(l.slots) }
func (l *leaf[K, V]) isEmpty() bool { return len(l.slots) == 0 }
func (l *leaf[K, V]) isLeaf() bool  { return true }
func (l *leaf[K, V]) height() int   { return 1 }

func (l *leaf[K, V]) foldValue() (any, bool) {
	return l.fold, l.folded
}

func (l *leaf[K, V]) minKey() K {
	if len(l.slots) == 0 {
		var zero K
		return zero
	}
	return l.slots[0].Key
}

func (l *leaf[K, V]) maxKey() K {
	if len(l.slots) == 0 {
		var zero K
		return zero
	}
	return l.slots[len(l.slots)-1].Key
}

// lookup returns the slot index of key and whether it is present. For absent
// keys the index is the insertion point.
func (l *leaf[K, V]) lookup(key K, ctx *treeContext[K, V]) (int, bool) {
	return slices.BinarySearchFunc(l.slots, key, func(e Entry[K, V], k K) int {
		return ctx.compare(e.Key, k)
	})
}

func (l *leaf[K, V]) has(key K, ctx *treeContext[K, V]) bool {
	_, found := l.lookup(key, ctx)
	return found
}

func (l *leaf[K, V]) get(key K, ctx *treeContext[K, V]) (V, bool) {
	if x, found := l.lookup(key, ctx); found {
		return l.slots[x].Value, true
	}
	var zero V
	return zero, false
}

func (l *leaf[K, V]) getEntry(index int) (Entry[K, V], bool) {
	if index < 0 || index >= len(l.slots) {
		return Entry[K, V]{}, false
	}
	return l.slots[index], true
}

func (l *leaf[K, V]) indexOf(key K, ctx *treeContext[K, V]) int {
	if x, found := l.lookup(key, ctx); found {
		return x
	}
	return -1
}

func (l *leaf[K, V]) firstEntry() (Entry[K, V], bool) {
	return l.getEntry(0)
}

func (l *leaf[K, V]) lastEntry() (Entry[K, V], bool) {
	return l.getEntry(len(l.slots) - 1)
}

func (l *leaf[K, V]) nextEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool) {
	x, found := l.lookup(key, ctx)
	if found {
		x++
	}
	return l.getEntry(x)
}

func (l *leaf[K, V]) previousEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool) {
	x, _ := l.lookup(key, ctx)
	return l.getEntry(x - 1)
}

func (l *leaf[K, V]) updated(key K, value V, ctx *treeContext[K, V]) page[K, V] {
	x, found := l.lookup(key, ctx)
	if found {
		if ctx.equal(l.slots[x].Value, value) {
			return l
		}
		slots := slices.Clone(l.slots)
		slots[x].Value = value
		return newLeaf(slots)
	}
	slots := make([]Entry[K, V], 0, len(l.slots)+1)
	slots = append(slots, l.slots[:x]...)
	slots = append(slots, Entry[K, V]{Key: key, Value: value})
	slots = append(slots, l.slots[x:]...)
	return newLeaf(slots)
}

func (l *leaf[K, V]) removed(key K, ctx *treeContext[K, V]) page[K, V] {
	x, found := l.lookup(key, ctx)
	if !found {
		return l
	}
	if len(l.slots) == 1 {
		return ctx.empty
	}
	slots := make([]Entry[K, V], 0, len(l.slots)-1)
	slots = append(slots, l.slots[:x]...)
	slots = append(slots, l.slots[x+1:]...)
	return newLeaf(slots)
}

func (l *leaf[K, V]) drop(lower int, ctx *treeContext[K, V]) page[K, V] {
	switch {
	case lower <= 0:
		return l
	case lower >= len(l.slots):
		return ctx.empty
	}
	return newLeaf(l.slots[lower:])
}

func (l *leaf[K, V]) take(upper int, ctx *treeContext[K, V]) page[K, V] {
	switch {
	case upper >= len(l.slots):
		return l
	case upper <= 0:
		return ctx.empty
	}
	return newLeaf(l.slots[:upper])
}

func (l *leaf[K, V]) balanced(ctx *treeContext[K, V]) page[K, V] {
	if len(l.slots) > 1 && ctx.pageShouldSplit(l) {
		return l.split(len(l.slots) >> 1)
	}
	return l
}

func (l *leaf[K, V]) split(index int) page[K, V] {
	return newNode([]page[K, V]{l.splitLeft(index), l.splitRight(index)})
}

func (l *leaf[K, V]) splitLeft(index int) page[K, V] {
	return newLeaf(l.slots[:index])
}

func (l *leaf[K, V]) splitRight(index int) page[K, V] {
	return newLeaf(l.slots[index:])
}

func (l *leaf[K, V]) reduced(identity any, accumulator func(any, V) any, _ func(any, any) any) page[K, V] {
	if l.folded || len(l.slots) == 0 {
		return l
	}
	fold := identity
	for _, e := range l.slots {
		fold = accumulator(fold, e.Value)
	}
	return &leaf[K, V]{slots: l.slots, fold: fold, folded: true}
}

func (l *leaf[K, V]) entries() cursor.Cursor[Entry[K, V]] {
	return cursor.Slice(l.slots)
}

func (l *leaf[K, V]) reverseEntries() cursor.Cursor[Entry[K, V]] {
	return cursor.SliceAt(l.slots, len(l.slots))
}

func (l *leaf[K, V]) forEach(fn func(K, V) bool) bool {
	for _, e := range l.slots {
		if !fn(e.Key, e.Value) {
			return false
		}
	}
	return true
}
