package btree

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	return t.root.has(key, t.ctx)
}

// Get returns the value associated with key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	return t.root.get(key, t.ctx)
}

// GetEntry returns the entry of rank index, i.e. the index-th entry in key
// order.
func (t *Tree[K, V]) GetEntry(index int) (Entry[K, V], bool) {
	return t.root.getEntry(index)
}

// IndexOf returns the rank of key, or -1 if key is absent.
func (t *Tree[K, V]) IndexOf(key K) int {
	return t.root.indexOf(key, t.ctx)
}

// FirstEntry returns the entry with the smallest key.
func (t *Tree[K, V]) FirstEntry() (Entry[K, V], bool) {
	return t.root.firstEntry()
}

// LastEntry returns the entry with the largest key.
func (t *Tree[K, V]) LastEntry() (Entry[K, V], bool) {
	return t.root.lastEntry()
}

// NextEntry returns the entry with the smallest key greater than key. key
// need not be present.
func (t *Tree[K, V]) NextEntry(key K) (Entry[K, V], bool) {
	return t.root.nextEntry(key, t.ctx)
}

// PreviousEntry returns the entry with the largest key less than key. key
// need not be present.
func (t *Tree[K, V]) PreviousEntry(key K) (Entry[K, V], bool) {
	return t.root.previousEntry(key, t.ctx)
}
