// Package lectic implements the lectic order: the strict total order on
// subsets of an ordered ground sequence that the Next-Closure algorithm
// uses to linearize a closed-set lattice.
//
// A Ground fixes a finite sequence of distinct elements; the position of
// an element in that sequence is its basic order, and all comparison
// semantics follow from it. Duplicate elements would break totality, so
// NewGround rejects them with ErrDuplicateElement (the one cheap
// precondition check the engines perform).
//
// For two sets A and B over a ground G:
//
//   - LessAt(i, A, B) holds iff i ∈ B, i ∉ A, and membership in A and B
//     agrees on every element strictly earlier than i. B "branches off"
//     from A exactly at pivot i.
//   - Less(A, B) holds iff LessAt(i, A, B) holds for some pivot i.
//
// Less is a strict total order on subsets of G: for any A ≠ B (restricted
// to ground elements), exactly one of Less(A,B), Less(B,A) holds.
// Elements outside the ground sequence are ignored by both comparisons.
//
// Complexity: LessAt is O(pos(i)); Less is O(|G|).
package lectic
