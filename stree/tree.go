package stree

// Tree is a persistent sequence of values with stable identities.
//
// A Tree is a mutable handle onto an immutable page tree: mutations replace
// the handle's root, leaving clones taken earlier untouched. Mutations
// either succeed completely or return an error before the root is replaced.
// Trees must be created with New or NewSequence.
//
//	Operation                   |   Cost
//	----------------------------+-----------
//	Get / Set                   |   O(log n)
//	Insert / Remove / Move      |   O(log n)
//	Push / Pop / Shift          |   O(log n)
//	Splice                      |   O((d+k) log n)
//	Lookup / ...ByID            |   O(n)
//	Clone                       |   O(1)
type Tree[I, V any] struct {
	ctx  *treeContext[I, V]
	root page[I, V]
}

// New creates an empty sequence with validated configuration.
func New[I, V any](cfg Config[I, V]) (*Tree[I, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ctx := newContext(cfg)
	return &Tree[I, V]{ctx: ctx, root: ctx.empty}, nil
}

// Clone returns a snapshot of the sequence in O(1).
func (t *Tree[I, V]) Clone() *Tree[I, V] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the sequence has no elements.
func (t *Tree[I, V]) IsEmpty() bool {
	return t == nil || t.root.isEmpty()
}

// Len returns the number of elements.
func (t *Tree[I, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the number of page levels, where 0 means empty and 1 means
// a leaf root.
func (t *Tree[I, V]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	return t.root.height()
}

// Set replaces the value at index, keeping the element's identity.
func (t *Tree[I, V]) Set(index int, value V) error {
	if index < 0 || index >= t.Len() {
		return indexError(index, t.Len())
	}
	t.root = t.root.updated(index, value, t.ctx)
	return nil
}

// SetByID replaces the value of the element identified by id. hint is the
// position where the search for id starts (see Lookup).
func (t *Tree[I, V]) SetByID(id I, value V, hint int) error {
	index := t.Lookup(id, hint)
	if index < 0 {
		return ErrUnknownIdentity
	}
	return t.Set(index, value)
}

// Insert inserts value at index, shifting later elements up. index may equal
// Len, which appends. The new element's identity is created by the
// configured identity generator.
func (t *Tree[I, V]) Insert(index int, value V) error {
	if index < 0 || index > t.Len() {
		return indexError(index, t.Len()+1)
	}
	t.insert(index, Entry[I, V]{ID: t.ctx.identify(value), Value: value})
	return nil
}

// InsertWithID inserts value with identity id at index. The caller is
// responsible for id being unique within the sequence.
func (t *Tree[I, V]) InsertWithID(index int, id I, value V) error {
	if index < 0 || index > t.Len() {
		return indexError(index, t.Len()+1)
	}
	t.insert(index, Entry[I, V]{ID: id, Value: value})
	return nil
}

func (t *Tree[I, V]) insert(index int, entry Entry[I, V]) {
	root := t.root.inserted(index, entry, t.ctx)
	if b := root.balanced(t.ctx); b != root {
		tracer().Debugf("stree: root split at arity %d", root.arity())
		root = b
	}
	t.root = root
}

// Remove removes the element at index and returns its value.
func (t *Tree[I, V]) Remove(index int) (V, error) {
	e, ok := t.root.getEntry(index)
	if !ok {
		return e.Value, indexError(index, t.Len())
	}
	t.root = t.root.removed(index, t.ctx)
	return e.Value, nil
}

// RemoveByID removes the element identified by id and returns its value.
func (t *Tree[I, V]) RemoveByID(id I, hint int) (V, error) {
	index := t.Lookup(id, hint)
	if index < 0 {
		var zero V
		return zero, ErrUnknownIdentity
	}
	return t.Remove(index)
}

// Push appends values to the end of the sequence.
func (t *Tree[I, V]) Push(values ...V) {
	for _, v := range values {
		t.insert(t.Len(), Entry[I, V]{ID: t.ctx.identify(v), Value: v})
	}
}

// Pop removes the last element and returns its value.
func (t *Tree[I, V]) Pop() (V, bool) {
	v, err := t.Remove(t.Len() - 1)
	return v, err == nil
}

// Unshift inserts values at the front of the sequence, keeping their order.
func (t *Tree[I, V]) Unshift(values ...V) {
	for i, v := range values {
		t.insert(i, Entry[I, V]{ID: t.ctx.identify(v), Value: v})
	}
}

// Shift removes the first element and returns its value.
func (t *Tree[I, V]) Shift() (V, bool) {
	v, err := t.Remove(0)
	return v, err == nil
}

// Move relocates the element at from, so that it ends up at position to.
// The element keeps its identity. Both positions must address existing
// elements.
func (t *Tree[I, V]) Move(from, to int) error {
	n := t.Len()
	if from < 0 || from >= n {
		return indexError(from, n)
	}
	if to < 0 || to >= n {
		return indexError(to, n)
	}
	if from == to {
		return nil
	}
	e, _ := t.root.getEntry(from)
	t.root = t.root.removed(from, t.ctx)
	t.insert(to, e)
	return nil
}

// MoveByID relocates the element identified by id to position to.
func (t *Tree[I, V]) MoveByID(id I, to, hint int) error {
	from := t.Lookup(id, hint)
	if from < 0 {
		return ErrUnknownIdentity
	}
	return t.Move(from, to)
}

// Splice removes deleteCount elements starting at start, inserts values in
// their place and returns the removed values.
//
// Arguments are clamped rather than rejected: a negative start counts from
// the end of the sequence, a start beyond the end appends, and deleteCount
// is limited to the elements available.
func (t *Tree[I, V]) Splice(start, deleteCount int, values ...V) []V {
	n := t.Len()
	if start < 0 {
		start = max(n+start, 0)
	} else {
		start = min(start, n)
	}
	deleteCount = max(0, min(deleteCount, n-start))
	removed := make([]V, 0, deleteCount)
	c := t.root.entries()
	c.Skip(start)
	for range deleteCount {
		e, _ := c.Next()
		removed = append(removed, e.Value)
	}
	root := t.root
	for range deleteCount {
		root = root.removed(start, t.ctx)
	}
	t.root = root
	for i, v := range values {
		t.insert(start+i, Entry[I, V]{ID: t.ctx.identify(v), Value: v})
	}
	return removed
}

// Drop removes the first lower elements.
func (t *Tree[I, V]) Drop(lower int) {
	t.root = t.root.drop(lower, t.ctx)
}

// Take keeps the first upper elements and removes the rest.
func (t *Tree[I, V]) Take(upper int) {
	t.root = t.root.take(upper, t.ctx)
}

// Clear removes all elements.
func (t *Tree[I, V]) Clear() {
	if !t.root.isEmpty() {
		tracer().Debugf("stree: clearing %d elements", t.root.size())
	}
	t.root = t.ctx.empty
}
