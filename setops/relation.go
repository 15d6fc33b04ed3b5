package setops

import "github.com/formalkit/fca/core"

// TransitiveClosure returns the smallest superset of rel closed under
// composition: whenever (x,z) and (z,y) are present, so is (x,y).
// Convergence is guaranteed because the universe of coordinates is
// finite. The input relation is not modified.
//
// The fixed point is reached with a semi-naive worklist: only pairs not
// seen before are re-joined against the successor and predecessor
// indices, so no composition is recomputed.
func TransitiveClosure[T comparable](rel core.Set[Pair[T]]) core.Set[Pair[T]] {
	closure := rel.Clone()

	// succ[z] holds all y with (z,y) in the closure; pred mirrors it.
	succ := make(map[T]core.Set[T])
	pred := make(map[T]core.Set[T])
	link := func(p Pair[T]) {
		if succ[p.First] == nil {
			succ[p.First] = core.NewSet[T]()
		}
		succ[p.First].Add(p.Second)
		if pred[p.Second] == nil {
			pred[p.Second] = core.NewSet[T]()
		}
		pred[p.Second].Add(p.First)
	}

	// Seed the indices and the worklist with every original pair.
	work := make([]Pair[T], 0, closure.Len())
	for p := range closure {
		link(p)
		work = append(work, p)
	}

	add := func(p Pair[T]) {
		if closure.Has(p) {
			return
		}
		closure.Add(p)
		link(p)
		work = append(work, p)
	}

	// Drain: each popped pair composes once with everything already
	// present on either side. New pairs re-enter the worklist.
	for head := 0; head < len(work); head++ {
		p := work[head]
		for y := range succ[p.Second] {
			add(Pair[T]{First: p.First, Second: y})
		}
		for w := range pred[p.First] {
			add(Pair[T]{First: w, Second: p.Second})
		}
	}

	return closure
}

// IsFunctionGraph reports whether rel is the graph of a total function
// from source to target: the projection of rel onto first coordinates
// equals source, the projection onto second coordinates is a subset of
// target, and every source element has exactly one image.
//
// Complexity: O(|rel|) expected time.
func IsFunctionGraph[T comparable](rel core.Set[Pair[T]], source, target core.Set[T]) bool {
	// A total function has exactly one pair per source element.
	if rel.Len() != source.Len() {
		return false
	}

	domain := make(core.Set[T], rel.Len())
	for p := range rel {
		if !source.Has(p.First) || !target.Has(p.Second) {
			return false
		}
		if domain.Has(p.First) {
			// Two images for one source element.
			return false
		}
		domain.Add(p.First)
	}

	// |rel| == |source|, no duplicate firsts, domain ⊆ source:
	// the projection is exactly source.
	return domain.Len() == source.Len()
}
