package btree

import (
	"fmt"
	"io"

	"github.com/npillmayer/ptree/internal/dump"
)

type dumpPage[K, V any] struct {
	p page[K, V]
}

func (d dumpPage[K, V]) IsLeaf() bool {
	return d.p.isLeaf()
}

func (d dumpPage[K, V]) Label() string {
	if d.p.isEmpty() {
		return "empty"
	}
	if d.p.isLeaf() {
		return fmt.Sprintf("leaf[%d] %v … %v", d.p.arity(), d.p.minKey(), d.p.maxKey())
	}
	return fmt.Sprintf("node[%d] size=%d", d.p.arity(), d.p.size())
}

func (d dumpPage[K, V]) Children() []dump.Page {
	n, ok := d.p.(*node[K, V])
	if !ok {
		return nil
	}
	children := make([]dump.Page, len(n.pages))
	for i, p := range n.pages {
		children[i] = dumpPage[K, V]{p: p}
	}
	return children
}

// Dump writes an indented outline of the page structure to w (for debugging
// purposes).
func (t *Tree[K, V]) Dump(w io.Writer) error {
	return dump.Outline(w, dumpPage[K, V]{p: t.root})
}

// Dot writes the page structure to w in Graphviz DOT format (for debugging
// purposes).
func (t *Tree[K, V]) Dot(w io.Writer) error {
	return dump.Dot(w, dumpPage[K, V]{p: t.root})
}
