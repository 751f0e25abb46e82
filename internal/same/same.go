// Package same decides whether a value written to a page is the value
// already stored there, so that copy-on-write updates can return the page
// unchanged.
package same

import "reflect"

// Value reports whether a and b are identical: equal for comparable dynamic
// types (pointers compare by reference), false otherwise. It never panics on
// values holding slices, maps or funcs.
func Value[V any](a, b V) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() || !vx.Comparable() || !vy.Comparable() {
		return false
	}
	return vx.Equal(vy)
}
