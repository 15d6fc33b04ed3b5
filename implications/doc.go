// Package implications computes the closure of a set under a collection
// of implications (premise → conclusion pairs over a common attribute
// universe) with the Downing–Gallier counting algorithm: each implication
// fires at most once, as soon as its premise is fully covered, so one
// closure call costs O(Σ premise sizes + Σ conclusion sizes) rather than
// the quadratic cost of naive repeated scanning.
//
// Two-phase design:
//
//   - Index (preprocessing, once per implication collection): for every
//     attribute, the indices of the implications whose premise contains
//     it, plus each implication's premise cardinality. The Index is
//     immutable after construction and safe to share read-only across
//     concurrently running closure calls.
//   - Close (execution, once per input set): a counter per implication —
//     premise size minus the premise attributes already present — and a
//     FIFO queue of implications whose counter reached zero. Draining the
//     queue merges each fired conclusion into the result and decrements
//     the counters of every implication waiting on a newly added
//     attribute. All of this state is local to one call.
//
// The closure operator packaged by Index.Operator is extensive, monotone
// and idempotent by construction, so it plugs directly into the
// nextclosure enumerator: together they enumerate all sets closed under
// a given implication set.
//
// Attributes are opaque comparable tokens; the package never validates
// universe membership (that is the caller's boundary concern).
package implications
