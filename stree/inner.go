package stree

import (
	"slices"

	"github.com/npillmayer/ptree/cursor"
)

// node is an internal page. knots[i] is the start offset of pages[i+1]
// within the node; sz caches the number of elements of the subtree.
type node[I, V any] struct {
	pages  []page[I, V]
	knots  []int
	sz     int
	fold   any
	folded bool
}

// newNode derives knots and size from pages.
func newNode[I, V any](pages []page[I, V]) *node[I, V] {
	assert(len(pages) > 0, "newNode called without child pages")
	knots := make([]int, len(pages)-1)
	sz := pages[0].size()
	for i, p := range pages[1:] {
		knots[i] = sz
		sz += p.size()
	}
	return &node[I, V]{pages: slices.Clip(pages), knots: knots, sz: sz}
}

func (n *node[I, V]) arity() int    { return len(n.pages) }
func (n *node[I, V]) size() int     { return n.sz }
func (n *node[I, V]) isEmpty() bool { return n.sz == 0 }
func (n *node[I, V]) isLeaf() bool  { return false }

func (n *node[I, V]) height() int {
	h := 0
	for _, p := range n.pages {
		h = max(h, p.height())
	}
	return h + 1
}

func (n *node[I, V]) foldValue() (any, bool) {
	return n.fold, n.folded
}

// start returns the offset of pages[x] within the node.
func (n *node[I, V]) start(x int) int {
	if x == 0 {
		return 0
	}
	return n.knots[x-1]
}

// lookup returns the index of the child holding position index, and the
// position relative to that child. index == size is routed to the end of
// the last child.
func (n *node[I, V]) lookup(index int) (int, int) {
	x, found := slices.BinarySearch(n.knots, index)
	if found {
		x++
	}
	return x, index - n.start(x)
}

func (n *node[I, V]) getEntry(index int) (Entry[I, V], bool) {
	if index < 0 || index >= n.sz {
		return Entry[I, V]{}, false
	}
	x, i := n.lookup(index)
	return n.pages[x].getEntry(i)
}

func (n *node[I, V]) firstEntry() (Entry[I, V], bool) {
	return n.pages[0].firstEntry()
}

func (n *node[I, V]) lastEntry() (Entry[I, V], bool) {
	return n.pages[len(n.pages)-1].lastEntry()
}

func (n *node[I, V]) updated(index int, value V, ctx *treeContext[I, V]) page[I, V] {
	x, i := n.lookup(index)
	oldPage := n.pages[x]
	newPage := oldPage.updated(i, value, ctx)
	if newPage == oldPage {
		return n
	}
	pages := slices.Clone(n.pages)
	pages[x] = newPage
	return &node[I, V]{pages: pages, knots: n.knots, sz: n.sz}
}

func (n *node[I, V]) inserted(index int, entry Entry[I, V], ctx *treeContext[I, V]) page[I, V] {
	x, i := n.lookup(index)
	newPage := n.pages[x].inserted(i, entry, ctx)
	if ctx.pageShouldSplit(newPage) {
		mid := newPage.arity() >> 1
		return n.replaced(x, 1, newPage.splitLeft(mid), newPage.splitRight(mid))
	}
	return n.replaced(x, 1, newPage)
}

func (n *node[I, V]) removed(index int, ctx *treeContext[I, V]) page[I, V] {
	x, i := n.lookup(index)
	newPage := n.pages[x].removed(i, ctx)
	if newPage.isEmpty() {
		switch len(n.pages) {
		case 1:
			return ctx.empty
		case 2:
			return n.pages[1-x]
		}
		return n.replaced(x, 1)
	}
	if ctx.pageShouldMerge(newPage) {
		return n.updatedPageMerge(x, newPage, ctx)
	}
	return n.replaced(x, 1, newPage)
}

// replaced returns a node with the count children starting at pages[x]
// replaced by the given pages.
func (n *node[I, V]) replaced(x, count int, pages ...page[I, V]) *node[I, V] {
	children := make([]page[I, V], 0, len(n.pages)-count+len(pages))
	children = append(children, n.pages[:x]...)
	children = append(children, pages...)
	children = append(children, n.pages[x+count:]...)
	return newNode(children)
}

// updatedPageMerge joins the shrunken pages[x] with a neighbour. If the
// joined page is too large, it is split again at its midpoint.
func (n *node[I, V]) updatedPageMerge(x int, newPage page[I, V], ctx *treeContext[I, V]) page[I, V] {
	if len(n.pages) < 2 {
		return n.replaced(x, 1, newPage)
	}
	l := max(0, x-1)
	left, right := n.pages[l], n.pages[l+1]
	if l == x {
		left = newPage
	} else {
		right = newPage
	}
	merged, ok := mergePages(left, right)
	if !ok {
		return n.replaced(x, 1, newPage)
	}
	if ctx.pageShouldSplit(merged) {
		mid := merged.arity() >> 1
		return n.replaced(l, 2, merged.splitLeft(mid), merged.splitRight(mid))
	}
	if len(n.pages) == 2 {
		return merged
	}
	return n.replaced(l, 2, merged)
}

// mergePages concatenates two sibling pages of the same kind.
func mergePages[I, V any](left, right page[I, V]) (page[I, V], bool) {
	switch l := left.(type) {
	case *leaf[I, V]:
		r, ok := right.(*leaf[I, V])
		if !ok {
			return nil, false
		}
		return newLeaf(slices.Concat(l.slots, r.slots)), true
	case *node[I, V]:
		r, ok := right.(*node[I, V])
		if !ok {
			return nil, false
		}
		return newNode(slices.Concat(l.pages, r.pages)), true
	}
	return nil, false
}

func (n *node[I, V]) drop(lower int, ctx *treeContext[I, V]) page[I, V] {
	switch {
	case lower <= 0:
		return n
	case lower >= n.sz:
		return ctx.empty
	}
	x, i := n.lookup(lower)
	first := n.pages[x].drop(i, ctx)
	if x == len(n.pages)-1 {
		return first
	}
	pages := make([]page[I, V], 0, len(n.pages)-x)
	pages = append(pages, first)
	pages = append(pages, n.pages[x+1:]...)
	return newNode(pages)
}

func (n *node[I, V]) take(upper int, ctx *treeContext[I, V]) page[I, V] {
	switch {
	case upper >= n.sz:
		return n
	case upper <= 0:
		return ctx.empty
	}
	x, i := n.lookup(upper)
	if i == 0 {
		// cut falls on a child boundary
		x, i = x-1, n.pages[x-1].size()
	}
	last := n.pages[x].take(i, ctx)
	if x == 0 {
		return last
	}
	pages := make([]page[I, V], 0, x+1)
	pages = append(pages, n.pages[:x]...)
	pages = append(pages, last)
	return newNode(pages)
}

func (n *node[I, V]) balanced(ctx *treeContext[I, V]) page[I, V] {
	if len(n.pages) > 1 && ctx.pageShouldSplit(n) {
		return n.split(len(n.pages) >> 1)
	}
	return n
}

func (n *node[I, V]) split(index int) page[I, V] {
	return newNode([]page[I, V]{n.splitLeft(index), n.splitRight(index)})
}

func (n *node[I, V]) splitLeft(index int) page[I, V] {
	return newNode(n.pages[:index])
}

func (n *node[I, V]) splitRight(index int) page[I, V] {
	return newNode(n.pages[index:])
}

func (n *node[I, V]) reduced(identity any, accumulator func(any, V) any, combiner func(any, any) any) page[I, V] {
	if n.folded {
		return n
	}
	pages := make([]page[I, V], len(n.pages))
	var fold any
	for i, p := range n.pages {
		pages[i] = p.reduced(identity, accumulator, combiner)
		f, _ := pages[i].foldValue()
		if i == 0 {
			fold = f
		} else {
			fold = combiner(fold, f)
		}
	}
	return &node[I, V]{pages: pages, knots: n.knots, sz: n.sz, fold: fold, folded: true}
}

func (n *node[I, V]) entries() cursor.Cursor[Entry[I, V]] {
	return cursor.NewNode[page[I, V], Entry[I, V]](n.pages, entryPages[I, V]{})
}

func (n *node[I, V]) reverseEntries() cursor.Cursor[Entry[I, V]] {
	return cursor.NewNodeAt[page[I, V], Entry[I, V]](n.pages, entryPages[I, V]{}, n.sz, len(n.pages))
}

func (n *node[I, V]) forEach(fn func(I, V) bool) bool {
	for _, p := range n.pages {
		if !p.forEach(fn) {
			return false
		}
	}
	return true
}
