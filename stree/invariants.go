package stree

import "fmt"

// Check validates structural tree invariants. It is meant for tests.
func (t *Tree[I, V]) Check() error {
	if t == nil || t.ctx == nil || t.root == nil {
		return fmt.Errorf("%w: tree not initialized", ErrInvalidConfig)
	}
	if t.root.isEmpty() {
		if t.root != page[I, V](t.ctx.empty) {
			return fmt.Errorf("%w: empty root is not the canonical empty page", ErrCorruptTree)
		}
		return nil
	}
	return t.checkPage(t.root, true)
}

func (t *Tree[I, V]) checkPage(p page[I, V], isRoot bool) error {
	if p.isEmpty() {
		return fmt.Errorf("%w: empty page below the root", ErrCorruptTree)
	}
	if t.ctx.pageShouldSplit(p) {
		return fmt.Errorf("%w: page arity %d exceeds split threshold", ErrCorruptTree, p.arity())
	}
	n, ok := p.(*node[I, V])
	if !ok {
		return nil
	}
	if !isRoot && len(n.pages) < 2 {
		return fmt.Errorf("%w: inner node with %d children", ErrCorruptTree, len(n.pages))
	}
	if len(n.knots) != len(n.pages)-1 {
		return fmt.Errorf("%w: %d knots for %d children", ErrCorruptTree, len(n.knots), len(n.pages))
	}
	offset := 0
	for i, child := range n.pages {
		if err := t.checkPage(child, false); err != nil {
			return err
		}
		if i > 0 && n.knots[i-1] != offset {
			return fmt.Errorf("%w: knot %d is %d, child starts at %d", ErrCorruptTree, i-1, n.knots[i-1], offset)
		}
		offset += child.size()
	}
	if offset != n.sz {
		return fmt.Errorf("%w: cached size %d, children hold %d", ErrCorruptTree, n.sz, offset)
	}
	return nil
}
