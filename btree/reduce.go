package btree

// Reduce folds all values of t from left to right.
//
// Leaves fold their values with accumulator, starting at identity; internal
// nodes combine the folds of their children with combiner. combiner must be
// associative and consistent with accumulator, with identity as its neutral
// element.
//
// Folds are memoized in the pages of t, so repeated reductions only
// recompute subtrees changed in between. As pages are shared between clones,
// all trees derived from one another must be reduced with the same functions.
func Reduce[K, V, U any](t *Tree[K, V], identity U, accumulator func(U, V) U, combiner func(U, U) U) U {
	if t.root.isEmpty() {
		return identity
	}
	t.root = t.root.reduced(identity,
		func(f any, v V) any { return accumulator(f.(U), v) },
		func(a, b any) any { return combiner(a.(U), b.(U)) },
	)
	fold, ok := t.root.foldValue()
	assert(ok, "Reduce: root fold missing after reduction")
	return fold.(U)
}
