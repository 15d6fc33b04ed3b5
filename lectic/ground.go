package lectic

import (
	"errors"
	"fmt"
)

// ErrDuplicateElement is returned by NewGround when the proposed sequence
// repeats an element, which would break the totality of the lectic order.
var ErrDuplicateElement = errors.New("lectic: duplicate element in ground sequence")

// Ground is a finite sequence of distinct elements whose positions define
// the basic order for lectic comparison. It is immutable after
// construction and safe to share read-only across concurrent calls.
type Ground[T comparable] struct {
	seq []T
	pos map[T]int
}

// NewGround builds a Ground from elems, preserving their order.
// Returns ErrDuplicateElement (wrapped with the offending element) if any
// element occurs twice. The input slice is copied; later mutation of
// elems does not affect the Ground.
func NewGround[T comparable](elems []T) (*Ground[T], error) {
	g := &Ground[T]{
		seq: make([]T, len(elems)),
		pos: make(map[T]int, len(elems)),
	}
	for i, e := range elems {
		if _, dup := g.pos[e]; dup {
			return nil, fmt.Errorf("element %v at index %d: %w", e, i, ErrDuplicateElement)
		}
		g.seq[i] = e
		g.pos[e] = i
	}

	return g, nil
}

// Len returns the number of elements in the ground sequence.
func (g *Ground[T]) Len() int {
	return len(g.seq)
}

// At returns the element at position i. Panics if i is out of range,
// as slice indexing does.
func (g *Ground[T]) At(i int) T {
	return g.seq[i]
}

// Pos returns the position of e in the sequence and whether e belongs
// to it at all.
func (g *Ground[T]) Pos(e T) (int, bool) {
	i, ok := g.pos[e]

	return i, ok
}

// Elements returns a copy of the ground sequence in its fixed order.
func (g *Ground[T]) Elements() []T {
	out := make([]T, len(g.seq))
	copy(out, g.seq)

	return out
}
