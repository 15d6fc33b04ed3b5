package nextclosure

import (
	"fmt"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
)

// Oplus computes the closure step A ⊕ i: keep the elements of a strictly
// earlier than pivot in the ground order, add the pivot, and close.
// This proposes the unique minimal closed candidate that lectically
// follows a and first differs at the pivot.
//
// Returns ErrUnknownPivot if pivot is not a ground element.
//
// Complexity: O(pos(pivot)) plus one closure evaluation.
func Oplus[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], a core.Set[T], pivot T) (core.Set[T], error) {
	if g == nil {
		return nil, ErrNilGround
	}
	if clop == nil {
		return nil, ErrNilOperator
	}
	k, ok := g.Pos(pivot)
	if !ok {
		return nil, fmt.Errorf("pivot %v: %w", pivot, ErrUnknownPivot)
	}

	return oplusAt(g, clop, a, k), nil
}

// oplusAt is the index-based closure step used inside the enumerator's
// scan loop; the pivot position k is trusted to be in range.
func oplusAt[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], a core.Set[T], k int) core.Set[T] {
	cand := make(core.Set[T], k+1)
	for j := 0; j < k; j++ {
		if e := g.At(j); a.Has(e) {
			cand.Add(e)
		}
	}
	cand.Add(g.At(k))

	return clop(cand)
}
