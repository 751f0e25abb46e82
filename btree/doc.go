/*
Package btree provides a persistent, immutable sorted map backed by a paged
B-tree.

Pages (leaves and internal nodes) are never modified after construction.
Every write builds a new root along the path to the affected slot while all
untouched subtrees are shared between the old and the new version. Taking a
snapshot of a tree therefore is O(1) (see Tree.Clone), and readers of an old
version are never affected by writers of a newer one.

Internal nodes cache the sizes of their subtrees, which gives O(log n) rank
queries (GetEntry, IndexOf), range slicing (Drop, Take) and seeking cursors.
Subtrees may also memoize an associative fold of their values (see Reduce).

Ordering of keys is defined by a comparator supplied with the Config, page
sizes by a policy.SplitPolicy. Pages never store policy; every structural
operation receives it through the tree.

A Tree is not synchronized. Mutation always replaces the tree's root, so a
single writer and any number of readers of clones is safe without locks.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

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
