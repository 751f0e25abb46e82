package stree

import (
	"cmp"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	idNode     *snowflake.Node
	idNodeOnce sync.Once
)

// snowflakeNode returns the process-wide generator of default identities.
func snowflakeNode() *snowflake.Node {
	idNodeOnce.Do(func() {
		node, err := snowflake.NewNode(1)
		assert(err == nil, "stree: cannot create snowflake node")
		idNode = node
	})
	return idNode
}

// NewSequence creates an empty sequence whose elements are identified by
// snowflake IDs, unique within the process.
func NewSequence[V any]() *Tree[snowflake.ID, V] {
	t, err := New(Config[snowflake.ID, V]{
		Identify: func(V) snowflake.ID { return snowflakeNode().Generate() },
		Compare:  cmp.Compare[snowflake.ID],
	})
	assert(err == nil, "NewSequence: default configuration rejected")
	return t
}
