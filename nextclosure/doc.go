// Package nextclosure enumerates all closed sets of an arbitrary closure
// operator over a finite ground sequence, without repetition, in strictly
// increasing lectic order (Ganter's Next-Closure algorithm).
//
// 🚀 What is Next-Closure?
//
//	Given a ground sequence G and a closure operator clop, the family of
//	closed sets forms a lattice. Next-Closure walks that lattice as a flat
//	sequence: starting from clop(∅) (or clop(initial)), each step produces
//	the lectically smallest closed set strictly greater than the current
//	one, until the lectic maximum is reached. Every closed set appears
//	exactly once; the lattice is never materialized.
//
// ✨ Key features:
//   - Enumerator state machine: explicit Next() advance, partial
//     consumption is always safe, no cleanup obligations
//   - Oplus closure step: truncate below a pivot, add it, re-close
//   - ImproveOrder heuristic: reorders the ground set so failed pivot
//     probes are rejected sooner (never needed for correctness)
//   - Family restriction: enumerate only closed sets satisfying a
//     predicate, provided the family is closed under the algorithm's own
//     truncation step (caller's responsibility, see WithFamily)
//
// ⚙️ Usage:
//
//	g, err := lectic.NewGround([]int{3, 2, 1})
//	if err != nil { ... }
//	enum, err := nextclosure.New(g, core.Identity[int]())
//	if err != nil { ... }
//	for s, ok := enum.Next(); ok; s, ok = enum.Next() {
//		// visit s — all 2³ subsets, in lectic order
//	}
//
// Transition rule (next-closed-set):
//  1. Scan pivot candidates from the last ground position toward the
//     first; skip pivots already in the current set A.
//  2. For pivot i compute B = clop({j ∈ A : j earlier than i} ∪ {i}).
//  3. Accept the first B with branching pivot i (lectic.LessAt), i.e.
//     B adds nothing earlier than i. B is then the lectic successor of A.
//  4. No acceptable pivot means A is the lectic maximum: enumeration ends.
//
// Each transition probes every pivot at most once, so the per-transition
// cost is O(|G|) closure evaluations; the enumerator holds no state
// beyond the current set.
//
// The operator contract (extensive, monotone, idempotent) is never
// verified; violating it yields undefined iteration behavior — see the
// core package documentation.
package nextclosure
