package implications

import "github.com/formalkit/fca/core"

// Index is the read-only implication graph built once per implication
// collection: for every attribute, the ordinals of the implications
// whose premise contains it, plus each implication's premise size.
//
// An Index is immutable after NewIndex returns. Its construction cost is
// amortized across arbitrarily many Close calls, and concurrent Close
// calls may share one Index without locking — every call owns its own
// worklist state.
type Index[T comparable] struct {
	imps []Implication[T]

	// inPremise maps an attribute to the ordinals of all implications
	// listing it in their premise.
	inPremise map[T][]int

	// premiseSize caches the premise cardinality per ordinal.
	premiseSize []int
}

// NewIndex preprocesses imps into an Index.
//
// Complexity: O(Σ premise sizes).
func NewIndex[T comparable](imps []Implication[T]) *Index[T] {
	ix := &Index[T]{
		imps:        make([]Implication[T], len(imps)),
		inPremise:   make(map[T][]int),
		premiseSize: make([]int, len(imps)),
	}
	copy(ix.imps, imps)

	for i, imp := range ix.imps {
		ix.premiseSize[i] = imp.premise.Len()
		for attr := range imp.premise {
			ix.inPremise[attr] = append(ix.inPremise[attr], i)
		}
	}

	return ix
}

// Len returns the number of indexed implications.
func (ix *Index[T]) Len() int {
	return len(ix.imps)
}

// Operator packages the index as a closure operator, reusable across
// many input sets and directly composable with the nextclosure
// enumerator.
func (ix *Index[T]) Operator() core.ClosureOperator[T] {
	return ix.Close
}
