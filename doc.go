/*
Package ptree is the root of a module of persistent, immutable collections
built on copy-on-write paged trees.

Subpackages:

  - btree: a sorted map with rank queries, range slicing and fold caching
  - stree: a sequence indexed by position, with stable element identities
  - cursor: bidirectional cursors shared by both collections
  - policy: page split and merge policies

All collections offer O(1) snapshots. Readers of a snapshot are never
affected by later writes to the collection it was taken from.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ptree
