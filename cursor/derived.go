package cursor

type mapCursor[T, U any] struct {
	base Cursor[T]
	f    func(T) U
}

// Map projects the elements of c through f. The projection cannot Set
// elements; Delete is passed through to c.
func Map[T, U any](c Cursor[T], f func(T) U) Cursor[U] {
	return &mapCursor[T, U]{base: c, f: f}
}

func (m *mapCursor[T, U]) HasNext() bool      { return m.base.HasNext() }
func (m *mapCursor[T, U]) NextIndex() int     { return m.base.NextIndex() }
func (m *mapCursor[T, U]) HasPrevious() bool  { return m.base.HasPrevious() }
func (m *mapCursor[T, U]) PreviousIndex() int { return m.base.PreviousIndex() }
func (m *mapCursor[T, U]) Skip(n int)         { m.base.Skip(n) }
func (m *mapCursor[T, U]) Set(U) error        { return ErrImmutable }
func (m *mapCursor[T, U]) Delete() error      { return m.base.Delete() }

func (m *mapCursor[T, U]) Next() (U, bool) {
	v, ok := m.base.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return m.f(v), true
}

func (m *mapCursor[T, U]) Previous() (U, bool) {
	v, ok := m.base.Previous()
	if !ok {
		var zero U
		return zero, false
	}
	return m.f(v), true
}

type reverseCursor[T any] struct {
	base Cursor[T]
}

// Reverse swaps the directions of c. Next on the result returns what
// Previous on c would.
//
// Indices keep referring to positions in c: NextIndex is the index of the
// element Next would return.
func Reverse[T any](c Cursor[T]) Cursor[T] {
	if r, ok := c.(*reverseCursor[T]); ok {
		return r.base
	}
	return &reverseCursor[T]{base: c}
}

func (r *reverseCursor[T]) HasNext() bool       { return r.base.HasPrevious() }
func (r *reverseCursor[T]) NextIndex() int      { return r.base.PreviousIndex() }
func (r *reverseCursor[T]) Next() (T, bool)     { return r.base.Previous() }
func (r *reverseCursor[T]) HasPrevious() bool   { return r.base.HasNext() }
func (r *reverseCursor[T]) PreviousIndex() int  { return r.base.NextIndex() }
func (r *reverseCursor[T]) Previous() (T, bool) { return r.base.Next() }
func (r *reverseCursor[T]) Set(value T) error   { return r.base.Set(value) }
func (r *reverseCursor[T]) Delete() error       { return r.base.Delete() }

// Skip steps back over n elements of the underlying cursor, one at a time.
func (r *reverseCursor[T]) Skip(n int) {
	for ; n > 0 && r.base.HasPrevious(); n-- {
		r.base.Previous()
	}
}
