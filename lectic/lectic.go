package lectic

import "github.com/formalkit/fca/core"

// LessAt reports whether b lectically follows a with branching pivot i:
// i ∈ b, i ∉ a, and membership in a and b agrees on every ground element
// strictly earlier than i. A pivot outside the ground sequence never
// relates two sets.
//
// Complexity: O(pos(i)).
func (g *Ground[T]) LessAt(pivot T, a, b core.Set[T]) bool {
	k, ok := g.pos[pivot]
	if !ok {
		return false
	}
	// The pivot itself must flip from absent to present.
	if a.Has(pivot) || !b.Has(pivot) {
		return false
	}
	// Everything before the pivot must agree.
	for j := 0; j < k; j++ {
		e := g.seq[j]
		if a.Has(e) != b.Has(e) {
			return false
		}
	}

	return true
}

// Less reports whether a is strictly lectically smaller than b: some
// pivot i satisfies LessAt(i, a, b). Restricted to subsets of the ground
// sequence this is a strict total order; elements outside the sequence
// are ignored.
//
// Complexity: O(|G|).
func (g *Ground[T]) Less(a, b core.Set[T]) bool {
	// The earliest position where membership differs decides: a < b iff
	// that element belongs to b.
	for _, e := range g.seq {
		if a.Has(e) != b.Has(e) {
			return b.Has(e)
		}
	}

	return false
}
