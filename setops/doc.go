// Package setops provides set-algebra primitives over core.Set: cross
// products, disjoint unions, transitive closure of binary relations, and
// the function-graph test.
//
// All functions are pure and stateless: they never mutate their arguments
// and depend on nothing but them. They underlie the rest of fca but know
// nothing about closure operators or lectic order.
//
// Representation notes:
//
//   - A binary relation is a core.Set[Pair[T]]; Pair is a comparable
//     struct, so relations are ordinary sets.
//   - A disjoint union tags each element with the 0-based position of the
//     input set it came from (Tagged[T]), so equal elements of distinct
//     inputs never collide.
//   - A cross product is returned as [][]T rather than a set: tuples over
//     a comparable element type are slices, which cannot key a Go map.
//     Distinctness is still guaranteed because the inputs are sets; the
//     order of tuples is unspecified.
//
// Complexity:
//
//   - CrossProduct:      O(k·Π|Sᵢ|) for k input sets
//   - DisjointUnion:     O(Σ|Sᵢ|)
//   - TransitiveClosure: O(|R⁺|·d) where d bounds the successor/
//     predecessor fan-out met during the worklist drain
//   - IsFunctionGraph:   O(|R|)
package setops
