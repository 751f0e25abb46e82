package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.ctx == nil || t.root == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvalidConfig)
	}
	if t.root.isEmpty() {
		if t.root != page[K, V](t.ctx.empty) {
			return fmt.Errorf("%w: empty root is not the canonical empty page", ErrCorruptTree)
		}
		return nil
	}
	return t.checkPage(t.root, true)
}

func (t *Tree[K, V]) checkPage(p page[K, V], isRoot bool) error {
	if p.isEmpty() {
		return fmt.Errorf("%w: empty page below the root", ErrCorruptTree)
	}
	if t.ctx.pageShouldSplit(p) {
		return fmt.Errorf("%w: page arity %d exceeds split threshold", ErrCorruptTree, p.arity())
	}
	switch p := p.(type) {
	case *leaf[K, V]:
		for i := 1; i < len(p.slots); i++ {
			if t.ctx.compare(p.slots[i-1].Key, p.slots[i].Key) >= 0 {
				return fmt.Errorf("%w: leaf keys out of order at slot %d", ErrCorruptTree, i)
			}
		}
		return nil
	case *node[K, V]:
		if !isRoot && len(p.pages) < 2 {
			return fmt.Errorf("%w: inner node with %d children", ErrCorruptTree, len(p.pages))
		}
		if len(p.knots) != len(p.pages)-1 {
			return fmt.Errorf("%w: %d knots for %d children", ErrCorruptTree, len(p.knots), len(p.pages))
		}
		sz := 0
		for i, child := range p.pages {
			if child == nil {
				return fmt.Errorf("%w: nil child at index %d", ErrCorruptTree, i)
			}
			if err := t.checkPage(child, false); err != nil {
				return err
			}
			sz += child.size()
			if i == 0 {
				continue
			}
			if t.ctx.compare(p.knots[i-1], child.minKey()) != 0 {
				return fmt.Errorf("%w: knot %d differs from child min key", ErrCorruptTree, i-1)
			}
			if t.ctx.compare(p.pages[i-1].maxKey(), child.minKey()) >= 0 {
				return fmt.Errorf("%w: children %d and %d overlap", ErrCorruptTree, i-1, i)
			}
		}
		if sz != p.sz {
			return fmt.Errorf("%w: cached size %d, children hold %d", ErrCorruptTree, p.sz, sz)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown page type %T", ErrCorruptTree, p)
}
