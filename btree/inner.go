package btree

import (
	"slices"

	"github.com/npillmayer/ptree/cursor"
)

// node is an internal page. knots[i] is the minimum key of pages[i+1]; sz
// caches the number of entries of the subtree.
type node[K, V any] struct {
	pages  []page[K, V]
	knots  []K
	sz     int
	fold   any
	folded bool
}

// newNode derives knots and size from pages.
func newNode[K, V any](pages []page[K, V]) *node[K, V] {
	assert(len(pages) > 0, "newNode called without child pages")
	knots := make([]K, len(pages)-1)
	sz := pages[0].size()
	for i, p := range pages[1:] {
		knots[i] = p.minKey()
		sz += p.size()
	}
	return &node[K, V]{pages: slices.Clip(pages), knots: knots, sz: sz}
}

func (n *node[K, V]) arity() int    { return len(n.pages) }
func (n *node[K, V]) size() int     { return n.sz }
func (n *node[K, V]) isEmpty() bool { return n.sz == 0 }
func (n *node[K, V]) isLeaf() bool  { return false }
func (n *node[K, V]) minKey() K     { return n.pages[0].minKey() }
func (n *node[K, V]) maxKey() K     { return n.pages[len(n.pages)-1].maxKey() }

func (n *node[K, V]) height() int {
	h := 0
	for _, p := range n.pages {
		h = max(h, p.height())
	}
	return h + 1
}

func (n *node[K, V]) foldValue() (any, bool) {
	return n.fold, n.folded
}

// lookup returns the index of the child responsible for key.
func (n *node[K, V]) lookup(key K, ctx *treeContext[K, V]) int {
	x, found := slices.BinarySearchFunc(n.knots, key, ctx.compare)
	if found {
		return x + 1
	}
	return x
}

func (n *node[K, V]) has(key K, ctx *treeContext[K, V]) bool {
	return n.pages[n.lookup(key, ctx)].has(key, ctx)
}

func (n *node[K, V]) get(key K, ctx *treeContext[K, V]) (V, bool) {
	return n.pages[n.lookup(key, ctx)].get(key, ctx)
}

func (n *node[K, V]) getEntry(index int) (Entry[K, V], bool) {
	if index < 0 || index >= n.sz {
		return Entry[K, V]{}, false
	}
	for _, p := range n.pages {
		if index < p.size() {
			return p.getEntry(index)
		}
		index -= p.size()
	}
	return Entry[K, V]{}, false
}

func (n *node[K, V]) indexOf(key K, ctx *treeContext[K, V]) int {
	x := n.lookup(key, ctx)
	i := n.pages[x].indexOf(key, ctx)
	if i < 0 {
		return -1
	}
	for _, p := range n.pages[:x] {
		i += p.size()
	}
	return i
}

func (n *node[K, V]) firstEntry() (Entry[K, V], bool) {
	return n.pages[0].firstEntry()
}

func (n *node[K, V]) lastEntry() (Entry[K, V], bool) {
	return n.pages[len(n.pages)-1].lastEntry()
}

func (n *node[K, V]) nextEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool) {
	x := n.lookup(key, ctx)
	if e, ok := n.pages[x].nextEntry(key, ctx); ok {
		return e, true
	}
	if x+1 < len(n.pages) {
		return n.pages[x+1].firstEntry()
	}
	return Entry[K, V]{}, false
}

func (n *node[K, V]) previousEntry(key K, ctx *treeContext[K, V]) (Entry[K, V], bool) {
	x := n.lookup(key, ctx)
	if e, ok := n.pages[x].previousEntry(key, ctx); ok {
		return e, true
	}
	if x > 0 {
		return n.pages[x-1].lastEntry()
	}
	return Entry[K, V]{}, false
}

func (n *node[K, V]) updated(key K, value V, ctx *treeContext[K, V]) page[K, V] {
	x := n.lookup(key, ctx)
	oldPage := n.pages[x]
	newPage := oldPage.updated(key, value, ctx)
	if newPage == oldPage {
		return n
	}
	if oldPage.size() != newPage.size() && ctx.pageShouldSplit(newPage) {
		return n.updatedPageSplit(x, newPage, oldPage)
	}
	return n.updatedPage(x, newPage, oldPage)
}

// updatedPage replaces pages[x] by a non-empty page.
func (n *node[K, V]) updatedPage(x int, newPage, oldPage page[K, V]) *node[K, V] {
	pages := slices.Clone(n.pages)
	pages[x] = newPage
	knots := n.knots
	if x > 0 {
		knots = slices.Clone(n.knots)
		knots[x-1] = newPage.minKey()
	}
	return &node[K, V]{
		pages: pages,
		knots: knots,
		sz:    n.sz - oldPage.size() + newPage.size(),
	}
}

// updatedPageSplit replaces pages[x] by the two halves of the grown
// newPage, so the child never exceeds the split threshold.
func (n *node[K, V]) updatedPageSplit(x int, newPage, oldPage page[K, V]) *node[K, V] {
	mid := newPage.arity() >> 1
	left, right := newPage.splitLeft(mid), newPage.splitRight(mid)
	pages := make([]page[K, V], 0, len(n.pages)+1)
	pages = append(pages, n.pages[:x]...)
	pages = append(pages, left, right)
	pages = append(pages, n.pages[x+1:]...)
	knots := make([]K, 0, len(n.knots)+1)
	if x > 0 {
		knots = append(knots, n.knots[:x-1]...)
		knots = append(knots, left.minKey())
	}
	knots = append(knots, right.minKey())
	knots = append(knots, n.knots[x:]...)
	return &node[K, V]{
		pages: pages,
		knots: knots,
		sz:    n.sz - oldPage.size() + newPage.size(),
	}
}

func (n *node[K, V]) removed(key K, ctx *treeContext[K, V]) page[K, V] {
	x := n.lookup(key, ctx)
	oldPage := n.pages[x]
	newPage := oldPage.removed(key, ctx)
	if newPage == oldPage {
		return n
	}
	if newPage.isEmpty() {
		switch len(n.pages) {
		case 1:
			return ctx.empty
		case 2:
			return n.pages[1-x]
		}
		return n.removedPage(x, oldPage)
	}
	if ctx.pageShouldMerge(newPage) {
		return n.updatedPageMerge(x, newPage, oldPage, ctx)
	}
	return n.updatedPage(x, newPage, oldPage)
}

// removedPage splices out pages[x], which became empty.
func (n *node[K, V]) removedPage(x int, oldPage page[K, V]) *node[K, V] {
	pages := make([]page[K, V], 0, len(n.pages)-1)
	pages = append(pages, n.pages[:x]...)
	pages = append(pages, n.pages[x+1:]...)
	k := max(0, x-1)
	knots := make([]K, 0, len(n.knots)-1)
	knots = append(knots, n.knots[:k]...)
	knots = append(knots, n.knots[k+1:]...)
	return &node[K, V]{
		pages: pages,
		knots: knots,
		sz:    n.sz - oldPage.size(),
	}
}

// updatedPageMerge joins the shrunken pages[x] with a neighbour. If the
// joined page is too large, it is split again at its midpoint, leaving two
// evenly filled pages.
func (n *node[K, V]) updatedPageMerge(x int, newPage, oldPage page[K, V], ctx *treeContext[K, V]) page[K, V] {
	if len(n.pages) < 2 {
		return n.updatedPage(x, newPage, oldPage)
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
		return n.updatedPage(x, newPage, oldPage)
	}
	replacement := []page[K, V]{merged}
	if ctx.pageShouldSplit(merged) {
		mid := merged.arity() >> 1
		replacement = []page[K, V]{merged.splitLeft(mid), merged.splitRight(mid)}
	} else if len(n.pages) == 2 {
		return merged
	}
	pages := make([]page[K, V], 0, len(n.pages)-2+len(replacement))
	pages = append(pages, n.pages[:l]...)
	pages = append(pages, replacement...)
	pages = append(pages, n.pages[l+2:]...)
	return newNode(pages)
}

// mergePages concatenates two sibling pages of the same kind.
func mergePages[K, V any](left, right page[K, V]) (page[K, V], bool) {
	switch l := left.(type) {
	case *leaf[K, V]:
		r, ok := right.(*leaf[K, V])
		if !ok {
			return nil, false
		}
		return newLeaf(slices.Concat(l.slots, r.slots)), true
	case *node[K, V]:
		r, ok := right.(*node[K, V])
		if !ok {
			return nil, false
		}
		knots := make([]K, 0, len(l.knots)+len(r.knots)+1)
		knots = append(knots, l.knots...)
		knots = append(knots, r.minKey())
		knots = append(knots, r.knots...)
		return &node[K, V]{
			pages: slices.Concat(l.pages, r.pages),
			knots: knots,
			sz:    l.sz + r.sz,
		}, true
	}
	return nil, false
}

func (n *node[K, V]) drop(lower int, ctx *treeContext[K, V]) page[K, V] {
	switch {
	case lower <= 0:
		return n
	case lower >= n.sz:
		return ctx.empty
	}
	x := 0
	for lower >= n.pages[x].size() {
		lower -= n.pages[x].size()
		x++
	}
	first := n.pages[x].drop(lower, ctx)
	if x == len(n.pages)-1 {
		return first
	}
	pages := make([]page[K, V], 0, len(n.pages)-x)
	pages = append(pages, first)
	pages = append(pages, n.pages[x+1:]...)
	sz := first.size()
	for _, p := range n.pages[x+1:] {
		sz += p.size()
	}
	return &node[K, V]{
		pages: pages,
		knots: slices.Clip(n.knots[x:]),
		sz:    sz,
	}
}

func (n *node[K, V]) take(upper int, ctx *treeContext[K, V]) page[K, V] {
	switch {
	case upper >= n.sz:
		return n
	case upper <= 0:
		return ctx.empty
	}
	x := 0
	sz := 0
	for upper > n.pages[x].size() {
		upper -= n.pages[x].size()
		sz += n.pages[x].size()
		x++
	}
	last := n.pages[x].take(upper, ctx)
	if x == 0 {
		return last
	}
	pages := make([]page[K, V], 0, x+1)
	pages = append(pages, n.pages[:x]...)
	pages = append(pages, last)
	return &node[K, V]{
		pages: pages,
		knots: slices.Clip(n.knots[:x]),
		sz:    sz + last.size(),
	}
}

func (n *node[K, V]) balanced(ctx *treeContext[K, V]) page[K, V] {
	if len(n.pages) > 1 && ctx.pageShouldSplit(n) {
		return n.split(len(n.pages) >> 1)
	}
	return n
}

func (n *node[K, V]) split(index int) page[K, V] {
	return newNode([]page[K, V]{n.splitLeft(index), n.splitRight(index)})
}

func (n *node[K, V]) splitLeft(index int) page[K, V] {
	pages := slices.Clip(n.pages[:index])
	sz := 0
	for _, p := range pages {
		sz += p.size()
	}
	return &node[K, V]{pages: pages, knots: slices.Clip(n.knots[:index-1]), sz: sz}
}

func (n *node[K, V]) splitRight(index int) page[K, V] {
	pages := slices.Clip(n.pages[index:])
	sz := 0
	for _, p := range pages {
		sz += p.size()
	}
	return &node[K, V]{pages: pages, knots: slices.Clip(n.knots[index:]), sz: sz}
}

func (n *node[K, V]) reduced(identity any, accumulator func(any, V) any, combiner func(any, any) any) page[K, V] {
	if n.folded {
		return n
	}
	pages := make([]page[K, V], len(n.pages))
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
	return &node[K, V]{pages: pages, knots: n.knots, sz: n.sz, fold: fold, folded: true}
}

func (n *node[K, V]) entries() cursor.Cursor[Entry[K, V]] {
	return cursor.NewNode[page[K, V], Entry[K, V]](n.pages, entryPages[K, V]{})
}

func (n *node[K, V]) reverseEntries() cursor.Cursor[Entry[K, V]] {
	return cursor.NewNodeAt[page[K, V], Entry[K, V]](n.pages, entryPages[K, V]{}, n.sz, len(n.pages))
}

func (n *node[K, V]) forEach(fn func(K, V) bool) bool {
	for _, p := range n.pages {
		if !p.forEach(fn) {
			return false
		}
	}
	return true
}
