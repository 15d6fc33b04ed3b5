package setops

import "github.com/formalkit/fca/core"

// CrossProduct returns the set of tuples with one coordinate per input
// set, as a slice of tuples in unspecified order.
//
// The zero-argument call returns the identity element of the product:
// exactly one empty tuple. Any empty input set forces an empty result.
//
// Complexity: O(k·Π|Sᵢ|) time and space for k input sets.
func CrossProduct[T comparable](sets ...core.Set[T]) [][]T {
	// Start from the identity: the product of zero sets is {()}.
	tuples := [][]T{{}}

	for _, s := range sets {
		if s.Len() == 0 {
			// An empty factor annihilates the whole product.
			return nil
		}
		next := make([][]T, 0, len(tuples)*s.Len())
		for _, t := range tuples {
			for e := range s {
				// Copy before extending; tuples must not share backing arrays.
				ext := make([]T, len(t)+1)
				copy(ext, t)
				ext[len(t)] = e
				next = append(next, ext)
			}
		}
		tuples = next
	}

	return tuples
}

// DisjointUnion unions the input sets after tagging every element with
// the positional index of the set it came from. Equal elements of
// distinct inputs stay distinct because their tags differ; elements
// within one input set collapse as usual.
//
// Complexity: O(Σ|Sᵢ|) time and space.
func DisjointUnion[T comparable](sets ...core.Set[T]) core.Set[Tagged[T]] {
	total := 0
	for _, s := range sets {
		total += s.Len()
	}
	out := make(core.Set[Tagged[T]], total)
	for i, s := range sets {
		for e := range s {
			out.Add(Tagged[T]{Pos: i, Elem: e})
		}
	}

	return out
}
