package stree

// Get returns the value at index.
func (t *Tree[I, V]) Get(index int) (V, bool) {
	e, ok := t.root.getEntry(index)
	return e.Value, ok
}

// GetEntry returns the element at index together with its identity.
func (t *Tree[I, V]) GetEntry(index int) (Entry[I, V], bool) {
	return t.root.getEntry(index)
}

// GetByID returns the value of the element identified by id. hint is the
// position where the search starts (see Lookup).
func (t *Tree[I, V]) GetByID(id I, hint int) (V, bool) {
	e, ok := t.GetEntryByID(id, hint)
	return e.Value, ok
}

// GetEntryByID returns the element identified by id.
func (t *Tree[I, V]) GetEntryByID(id I, hint int) (Entry[I, V], bool) {
	index := t.Lookup(id, hint)
	if index < 0 {
		return Entry[I, V]{}, false
	}
	return t.root.getEntry(index)
}

// FirstEntry returns the first element.
func (t *Tree[I, V]) FirstEntry() (Entry[I, V], bool) {
	return t.root.firstEntry()
}

// LastEntry returns the last element.
func (t *Tree[I, V]) LastEntry() (Entry[I, V], bool) {
	return t.root.lastEntry()
}

// Lookup returns the position of the element identified by id, or -1.
//
// The search is a linear scan starting at position start and wrapping
// around the end of the sequence once. Callers knowing approximately where
// an element was last seen should pass that position to find it quickly.
func (t *Tree[I, V]) Lookup(id I, start int) int {
	n := t.Len()
	if n == 0 {
		return -1
	}
	start = max(0, min(start, n-1))
	c := t.EntriesFrom(start)
	for index := start; index < n; index++ {
		e, _ := c.Next()
		if t.ctx.compare(e.ID, id) == 0 {
			return index
		}
	}
	c = t.root.entries()
	for index := range start {
		e, _ := c.Next()
		if t.ctx.compare(e.ID, id) == 0 {
			return index
		}
	}
	return -1
}
