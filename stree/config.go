package stree

import (
	"fmt"

	"github.com/npillmayer/ptree/internal/same"
	"github.com/npillmayer/ptree/policy"
)

// Config configures a sequence.
type Config[I, V any] struct {
	// Identify creates the identity of a value entering the sequence without
	// an explicit identity. It is required.
	Identify func(value V) I
	// Compare tells whether two identities are equal (result 0). It is
	// required.
	Compare func(a, b I) int
	// Policy decides about page splits and merges. Defaults to
	// policy.Default().
	Policy policy.SplitPolicy
	// Equal tells whether a value written to a position equals the stored
	// one, in which case the tree is left unchanged. Defaults to identity for
	// comparable values and false otherwise.
	Equal func(a, b V) bool
}

func (cfg Config[I, V]) normalized() Config[I, V] {
	if cfg.Policy == nil {
		cfg.Policy = policy.Default()
	}
	if cfg.Equal == nil {
		cfg.Equal = same.Value[V]
	}
	return cfg
}

func (cfg Config[I, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Identify == nil {
		return fmt.Errorf("%w: identity generator is required", ErrInvalidConfig)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: identity comparator is required", ErrInvalidConfig)
	}
	if err := policy.Validate(cfg.Policy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// treeContext carries the policy every page operation is handed, together
// with the canonical empty page shared by all trees derived from one
// another.
type treeContext[I, V any] struct {
	identify func(value V) I
	compare  func(a, b I) int
	policy   policy.SplitPolicy
	equal    func(a, b V) bool
	empty    *leaf[I, V]
}

func newContext[I, V any](cfg Config[I, V]) *treeContext[I, V] {
	cfg = cfg.normalized()
	return &treeContext[I, V]{
		identify: cfg.Identify,
		compare:  cfg.Compare,
		policy:   cfg.Policy,
		equal:    cfg.Equal,
		empty:    &leaf[I, V]{},
	}
}

func (ctx *treeContext[I, V]) pageShouldSplit(p page[I, V]) bool {
	return ctx.policy.PageShouldSplit(p.arity())
}

func (ctx *treeContext[I, V]) pageShouldMerge(p page[I, V]) bool {
	return ctx.policy.PageShouldMerge(p.arity())
}
