package btree

import (
	"fmt"

	"github.com/npillmayer/ptree/internal/same"
	"github.com/npillmayer/ptree/policy"
)

// Config configures a sorted map.
type Config[K, V any] struct {
	// Compare defines the total order of keys. It is required.
	Compare func(a, b K) int
	// Policy decides about page splits and merges. Defaults to
	// policy.Default().
	Policy policy.SplitPolicy
	// Equal tells whether a value written for an existing key equals the
	// stored one, in which case the tree is left unchanged. Defaults to
	// identity for comparable values and false otherwise.
	Equal func(a, b V) bool
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Policy == nil {
		cfg.Policy = policy.Default()
	}
	if cfg.Equal == nil {
		cfg.Equal = same.Value[V]
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if err := policy.Validate(cfg.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// treeContext carries the policy every page operation is handed. Trees
// derived from one another (clones, Updated, Removed) share their context,
// and with it the canonical empty page.
type treeContext[K, V any] struct {
	compare func(a, b K) int
	policy  policy.SplitPolicy
	equal   func(a, b V) bool
	empty   *leaf[K, V]
}

func newContext[K, V any](cfg Config[K, V]) *treeContext[K, V] {
	cfg = cfg.normalized()
	return &treeContext[K, V]{
		compare: cfg.Compare,
		policy:  cfg.Policy,
		equal:   cfg.Equal,
		empty:   &leaf[K, V]{},
	}
}

func (ctx *treeContext[K, V]) pageShouldSplit(p page[K, V]) bool {
	return ctx.policy.PageShouldSplit(p.arity())
}

func (ctx *treeContext[K, V]) pageShouldMerge(p page[K, V]) bool {
	return ctx.policy.PageShouldMerge(p.arity())
}
