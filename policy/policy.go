/*
Package policy holds the balancing policy shared by the page trees of this
module.

Pages never store policy. Every structural operation of a tree receives its
policy as a parameter, which lets trees with different thresholds share page
code while keeping pages pure data.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package policy

import (
	"errors"
	"fmt"
)

const (
	// DefaultPageSplitSize is the arity above which a page is split.
	DefaultPageSplitSize = 32
	// MinPageSplitSize is the smallest split threshold a tree accepts.
	MinPageSplitSize = 4
)

// ErrInvalidPolicy signals an unusable split policy.
var ErrInvalidPolicy = errors.New("policy: invalid split policy")

// SplitPolicy decides when pages are split or merged.
//
// Arity is the number of slots of a leaf or the number of children of an
// internal node.
type SplitPolicy interface {
	PageShouldSplit(arity int) bool
	PageShouldMerge(arity int) bool
}

// Threshold is the default split policy: pages split when their arity
// exceeds the threshold and merge when it falls below half of it.
type Threshold int

// Default returns the threshold policy with DefaultPageSplitSize.
func Default() SplitPolicy {
	return Threshold(DefaultPageSplitSize)
}

// PageShouldSplit reports whether a page with the given arity is too large.
func (t Threshold) PageShouldSplit(arity int) bool {
	return arity > int(t)
}

// PageShouldMerge reports whether a page with the given arity is too small.
func (t Threshold) PageShouldMerge(arity int) bool {
	return arity < int(t)>>1
}

// Validate checks p for obvious misconfiguration. Custom policies are
// accepted as long as they are non-nil.
func Validate(p SplitPolicy) error {
	if p == nil {
		return fmt.Errorf("%w: policy is nil", ErrInvalidPolicy)
	}
	if t, ok := p.(Threshold); ok && int(t) < MinPageSplitSize {
		return fmt.Errorf("%w: threshold %d below minimum %d", ErrInvalidPolicy, int(t), MinPageSplitSize)
	}
	return nil
}
