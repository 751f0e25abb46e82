package cursor

// Pages supplies the per-collection hooks of a Node cursor.
//
// PageCursor returns a cursor positioned before the first element of a page,
// ReversePageCursor one positioned after its last element.
type Pages[P, T any] interface {
	PageSize(page P) int
	PageCursor(page P) Cursor[T]
	ReversePageCursor(page P) Cursor[T]
}

// Node is a bidirectional cursor over the elements of an ordered array of
// child pages.
//
// If child is open, it is a cursor over pages[childIndex]. Otherwise the
// cursor sits just before pages[childIndex]. index is the flat logical
// position across all pages.
type Node[P, T any] struct {
	pages      []P
	hooks      Pages[P, T]
	index      int
	childIndex int
	child      Cursor[T]
}

// NewNode creates a cursor positioned before the first element of pages.
func NewNode[P, T any](pages []P, hooks Pages[P, T]) *Node[P, T] {
	return &Node[P, T]{pages: pages, hooks: hooks}
}

// NewNodeAt creates a cursor positioned before pages[childIndex], where
// index is the number of elements held by pages[:childIndex]. Passing the
// total size and len(pages) yields a cursor at the end, ready for reverse
// traversal.
func NewNodeAt[P, T any](pages []P, hooks Pages[P, T], index, childIndex int) *Node[P, T] {
	return &Node[P, T]{
		pages:      pages,
		hooks:      hooks,
		index:      index,
		childIndex: max(0, min(childIndex, len(pages))),
	}
}

func (c *Node[P, T]) HasNext() bool {
	for {
		if c.child != nil {
			if c.child.HasNext() {
				return true
			}
			c.child = nil
			c.childIndex++
		}
		if c.childIndex >= len(c.pages) {
			return false
		}
		c.child = c.hooks.PageCursor(c.pages[c.childIndex])
	}
}

func (c *Node[P, T]) NextIndex() int {
	return c.index
}

func (c *Node[P, T]) Next() (T, bool) {
	if !c.HasNext() {
		var zero T
		return zero, false
	}
	v, ok := c.child.Next()
	if ok {
		c.index++
	}
	return v, ok
}

func (c *Node[P, T]) HasPrevious() bool {
	for {
		if c.child != nil {
			if c.child.HasPrevious() {
				return true
			}
			c.child = nil
		}
		if c.childIndex <= 0 {
			return false
		}
		c.childIndex--
		c.child = c.hooks.ReversePageCursor(c.pages[c.childIndex])
	}
}

func (c *Node[P, T]) PreviousIndex() int {
	return c.index - 1
}

func (c *Node[P, T]) Previous() (T, bool) {
	if !c.HasPrevious() {
		var zero T
		return zero, false
	}
	v, ok := c.child.Previous()
	if ok {
		c.index--
	}
	return v, ok
}

// Skip advances by n elements. Unopened children are skipped as a whole by
// their size; only the child where the skip lands is descended into.
func (c *Node[P, T]) Skip(n int) {
	for n > 0 {
		if c.child != nil {
			before := c.child.NextIndex()
			c.child.Skip(n)
			moved := c.child.NextIndex() - before
			c.index += moved
			n -= moved
			if n <= 0 {
				return
			}
			c.child = nil
			c.childIndex++
			continue
		}
		if c.childIndex >= len(c.pages) {
			return
		}
		size := c.hooks.PageSize(c.pages[c.childIndex])
		if n < size {
			c.child = c.hooks.PageCursor(c.pages[c.childIndex])
			continue
		}
		c.index += size
		n -= size
		c.childIndex++
	}
}

// Set replaces the element last returned, delegating to the open child.
func (c *Node[P, T]) Set(value T) error {
	if c.child == nil {
		return ErrNoElement
	}
	return c.child.Set(value)
}

// Delete removes the element last returned, delegating to the open child.
func (c *Node[P, T]) Delete() error {
	if c.child == nil {
		return ErrNoElement
	}
	before := c.child.NextIndex()
	if err := c.child.Delete(); err != nil {
		return err
	}
	c.index += c.child.NextIndex() - before
	return nil
}
