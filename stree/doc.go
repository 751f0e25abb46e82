/*
Package stree provides a persistent, immutable sequence with stable element
identities, backed by a paged tree indexed by position.

A Tree behaves like an array with O(log n) positional access, insertion and
removal. Every element carries an opaque identity, assigned when it enters
the sequence. Identities are never used for ordering; they let callers
re-find an element after the sequence has been rearranged (see Tree.Lookup).

Like package btree, pages are never modified after construction. Every write
builds a new root along the path to the affected slot and shares all other
subtrees, so snapshots (Tree.Clone) cost O(1).

Internal nodes cache the sizes of their subtrees together with the start
offset of every child but the first, which gives binary-searched positional
routing.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ptree'
func tracer() tracing.Trace {
	return tracing.Select("ptree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
