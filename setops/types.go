package setops

// Pair is an ordered pair of elements, the member type of binary
// relations. Being a comparable struct, it can populate a core.Set.
type Pair[T comparable] struct {
	// First is the source coordinate of the pair.
	First T

	// Second is the target coordinate of the pair.
	Second T
}

// Tagged is an element annotated with the 0-based position of the input
// set it originated from in a disjoint union. Two equal elements drawn
// from different input sets carry different tags and therefore never
// collide.
type Tagged[T comparable] struct {
	// Pos is the positional index of the originating input set.
	Pos int

	// Elem is the original element.
	Elem T
}
