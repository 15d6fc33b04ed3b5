package nextclosure

import (
	"sort"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
)

// ImproveOrder returns a permutation of base under which Next-Closure
// tends to reject failed pivot probes sooner: elements whose singleton
// closures are more inclusive sort earlier, tie-broken by the lectic
// order (with respect to the original base order) of those closures,
// larger first. Equal closures keep their original relative order.
//
// This is a heuristic only — any duplicate-free order yields a correct,
// if possibly slower, enumeration. Returns lectic.ErrDuplicateElement if
// base repeats an element, or ErrNilOperator for a nil operator.
//
// Complexity: |base| closure evaluations plus an O(n log n) sort with
// O(|G|) comparisons.
func ImproveOrder[T comparable](base []T, clop core.ClosureOperator[T]) ([]T, error) {
	if clop == nil {
		return nil, ErrNilOperator
	}
	// The original order doubles as duplicate detection and as the
	// tie-breaking lectic reference.
	ref, err := lectic.NewGround(base)
	if err != nil {
		return nil, err
	}

	// One closure evaluation per element, reused across comparisons.
	closures := make([]core.Set[T], len(base))
	for i, e := range base {
		closures[i] = clop(core.NewSet(e))
	}

	// A proper superset is always lectically larger (every difference
	// lies in the superset), so "lectically larger first" subsumes
	// "more inclusive first". Stable sort preserves ties.
	idx := make([]int, len(base))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return ref.Less(closures[idx[j]], closures[idx[i]])
	})

	out := make([]T, len(base))
	for k, i := range idx {
		out[k] = base[i]
	}

	return out, nil
}
