package stree

// Reduce folds all values of t in sequence order.
//
// Leaves fold their values with accumulator, starting at identity; internal
// nodes combine the folds of their children with combiner, which must be
// associative with identity as its neutral element. Folds are memoized in
// the pages, which are shared between clones: all trees derived from one
// another must be reduced with the same functions.
func Reduce[I, V, U any](t *Tree[I, V], identity U, accumulator func(U, V) U, combiner func(U, U) U) U {
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
