package stree

import (
	"fmt"
	"io"

	"github.com/npillmayer/ptree/internal/dump"
)

type dumpPage[I, V any] struct {
	p page[I, V]
}

func (d dumpPage[I, V]) IsLeaf() bool {
	return d.p.isLeaf()
}

func (d dumpPage[I, V]) Label() string {
	if d.p.isEmpty() {
		return "empty"
	}
	if l, ok := d.p.(*leaf[I, V]); ok {
		return fmt.Sprintf("leaf[%d] %v … %v", l.arity(), l.slots[0].Value, l.slots[len(l.slots)-1].Value)
	}
	return fmt.Sprintf("node[%d] size=%d", d.p.arity(), d.p.size())
}

func (d dumpPage[I, V]) Children() []dump.Page {
	n, ok := d.p.(*node[I, V])
	if !ok {
		return nil
	}
	children := make([]dump.Page, len(n.pages))
	for i, p := range n.pages {
		children[i] = dumpPage[I, V]{p: p}
	}
	return children
}

// Dump writes an indented outline of the page structure to w (for debugging
// purposes).
func (t *Tree[I, V]) Dump(w io.Writer) error {
	return dump.Outline(w, dumpPage[I, V]{p: t.root})
}

// Dot writes the page structure to w in Graphviz DOT format (for debugging
// purposes).
func (t *Tree[I, V]) Dot(w io.Writer) error {
	return dump.Dot(w, dumpPage[I, V]{p: t.root})
}
