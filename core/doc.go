// Package core defines the central Set and ClosureOperator types shared by
// every algorithm package in fca.
//
// A Set is a generic, map-backed finite set over any comparable element
// type. All operations are value-semantic where it matters: Union,
// Intersect and Diff allocate fresh sets and never alias their operands,
// so callers can hold results without defensive copies.
//
// A ClosureOperator is any function mapping sets to sets that is
//
//   - extensive:  A ⊆ clop(A)
//   - monotone:   A ⊆ B ⇒ clop(A) ⊆ clop(B)
//   - idempotent: clop(clop(A)) = clop(A)
//
// The engines built on top (nextclosure, implications) never verify these
// axioms; supplying an operator that violates them yields undefined
// iteration behavior — non-termination, sets that are not actually closed,
// or skipped closed sets. This is a documented caller contract, not a
// runtime-checked error.
//
// Complexity: all Set operations are O(n) in the sizes of their operands;
// membership and insertion are O(1) expected.
package core
