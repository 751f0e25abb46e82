package cursor

// SliceCursor is a cursor over the elements of a slice.
//
// Read-only slice cursors are produced by tree leaves; writable ones own a
// private copy of their elements and support Set and Delete.
type SliceCursor[T any] struct {
	items    []T
	index    int
	last     int // index of the element last returned, -1 if none
	writable bool
}

// Slice returns a read-only cursor positioned before the first element of
// items. items is not copied and must not be modified while in use.
func Slice[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{items: items, last: -1}
}

// SliceAt returns a read-only cursor positioned before items[index]. index is
// clamped to [0, len(items)].
func SliceAt[T any](items []T, index int) *SliceCursor[T] {
	c := Slice(items)
	c.index = max(0, min(index, len(items)))
	return c
}

// WritableSlice returns a cursor over a private copy of items which supports
// Set and Delete.
func WritableSlice[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{
		items:    append([]T(nil), items...),
		last:     -1,
		writable: true,
	}
}

// Items returns the current elements of the cursor.
func (c *SliceCursor[T]) Items() []T {
	return c.items
}

func (c *SliceCursor[T]) HasNext() bool {
	return c.index < len(c.items)
}

func (c *SliceCursor[T]) NextIndex() int {
	return c.index
}

func (c *SliceCursor[T]) Next() (T, bool) {
	if c.index >= len(c.items) {
		var zero T
		c.last = -1
		return zero, false
	}
	v := c.items[c.index]
	c.last = c.index
	c.index++
	return v, true
}

func (c *SliceCursor[T]) HasPrevious() bool {
	return c.index > 0
}

func (c *SliceCursor[T]) PreviousIndex() int {
	return c.index - 1
}

func (c *SliceCursor[T]) Previous() (T, bool) {
	if c.index <= 0 {
		var zero T
		c.last = -1
		return zero, false
	}
	c.index--
	c.last = c.index
	return c.items[c.index], true
}

func (c *SliceCursor[T]) Skip(n int) {
	if n <= 0 {
		return
	}
	c.index = min(c.index+n, len(c.items))
	c.last = -1
}

func (c *SliceCursor[T]) Set(value T) error {
	if !c.writable {
		return ErrImmutable
	}
	if c.last < 0 {
		return ErrNoElement
	}
	c.items[c.last] = value
	return nil
}

func (c *SliceCursor[T]) Delete() error {
	if !c.writable {
		return ErrImmutable
	}
	if c.last < 0 {
		return ErrNoElement
	}
	c.items = append(c.items[:c.last], c.items[c.last+1:]...)
	if c.last < c.index {
		c.index--
	}
	c.last = -1
	return nil
}

type emptyCursor[T any] struct{}

// Empty returns a cursor without elements.
func Empty[T any]() Cursor[T] {
	return emptyCursor[T]{}
}

func (emptyCursor[T]) HasNext() bool      { return false }
func (emptyCursor[T]) NextIndex() int     { return 0 }
func (emptyCursor[T]) HasPrevious() bool  { return false }
func (emptyCursor[T]) PreviousIndex() int { return -1 }
func (emptyCursor[T]) Skip(int)           {}
func (emptyCursor[T]) Set(T) error        { return ErrNoElement }
func (emptyCursor[T]) Delete() error      { return ErrNoElement }

func (emptyCursor[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

func (emptyCursor[T]) Previous() (T, bool) {
	var zero T
	return zero, false
}
