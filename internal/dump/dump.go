/*
Package dump renders the page structure of the trees of this module for
debugging purposes, either as an indented outline for the terminal or in
Graphviz DOT format.
*/
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Page is the view of a tree page needed for rendering.
type Page interface {
	Label() string
	IsLeaf() bool
	Children() []Page
}

var (
	nodeColor = color.New(color.FgCyan, color.Bold)
	leafColor = color.New(color.FgGreen)
)

// Outline writes an indented outline of the page tree rooted at root.
// Terminal colors are used unless color.NoColor is set.
func Outline(w io.Writer, root Page) error {
	return outline(w, root, 0)
}

func outline(w io.Writer, p Page, depth int) error {
	indent := strings.Repeat("  ", depth)
	if p.IsLeaf() {
		_, err := leafColor.Fprintf(w, "%s%s\n", indent, p.Label())
		return err
	}
	if _, err := nodeColor.Fprintf(w, "%s%s\n", indent, p.Label()); err != nil {
		return err
	}
	for _, child := range p.Children() {
		if err := outline(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Dot writes the page tree rooted at root in Graphviz DOT format.
func Dot(w io.Writer, root Page) error {
	var nodes, edges strings.Builder
	next := 1
	var walk func(p Page) int
	walk = func(p Page) int {
		id := next
		next++
		if p.IsLeaf() {
			fmt.Fprintf(&nodes, "\"%d\" [label=\"%s\",style=filled,shape=box];\n", id, escape(p.Label()))
			return id
		}
		fmt.Fprintf(&nodes, "\"%d\" [label=\"%s\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=ellipse];\n",
			id, escape(p.Label()))
		for _, child := range p.Children() {
			cid := walk(child)
			fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", id, cid)
		}
		return id
	}
	walk(root)
	_, err := fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n",
		nodes.String(), edges.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
