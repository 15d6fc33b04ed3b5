package implications

import "github.com/formalkit/fca/core"

// Close returns the least superset of start closed under every indexed
// implication: the Downing–Gallier worklist drain. start is not
// modified.
//
// Each implication fires at most once: its counter starts at the premise
// size, only ever decreases (once per premise attribute entering the
// result), and crossing zero enqueues it exactly once. Total work is
// O(Σ premise sizes + Σ conclusion sizes) per call; all worklist state
// is local to the call.
func (ix *Index[T]) Close(start core.Set[T]) core.Set[T] {
	result := start.Clone()

	// 1. Per-call counter arena: remaining premise attributes per
	//    implication, already discounting attributes present in start.
	counters := make([]int, len(ix.imps))
	copy(counters, ix.premiseSize)

	queue := make([]int, 0, len(ix.imps))

	// 2. Implications with empty premises are ready immediately.
	for i, size := range ix.premiseSize {
		if size == 0 {
			queue = append(queue, i)
		}
	}

	// 3. Discount the attributes of the input set; each zero crossing
	//    seeds the queue.
	for attr := range result {
		for _, i := range ix.inPremise[attr] {
			counters[i]--
			if counters[i] == 0 {
				queue = append(queue, i)
			}
		}
	}

	// 4. Drain: fire each ready implication once, merge the genuinely
	//    new conclusion attributes, and notify their premise listeners.
	for head := 0; head < len(queue); head++ {
		imp := ix.imps[queue[head]]
		for attr := range imp.conclusion {
			if result.Has(attr) {
				continue
			}
			result.Add(attr)
			for _, j := range ix.inPremise[attr] {
				counters[j]--
				if counters[j] == 0 {
					queue = append(queue, j)
				}
			}
		}
	}

	return result
}

// Close is the unindexed one-shot convenience form: build the index,
// close once, discard. Prefer NewIndex + Index.Close (or Operator) when
// closing many sets under the same implications.
func Close[T comparable](imps []Implication[T], start core.Set[T]) core.Set[T] {
	return NewIndex(imps).Close(start)
}
