package implications

import "github.com/formalkit/fca/core"

// Implication is a premise → conclusion rule over a common attribute
// universe. Premise and conclusion need not be disjoint. The struct is
// immutable after construction: New clones both sets, and the accessors
// return clones, so no caller can reach shared internal state.
type Implication[T comparable] struct {
	premise    core.Set[T]
	conclusion core.Set[T]
}

// New builds an implication from premise and conclusion. Both sets are
// cloned; nil is treated as the empty set (an empty premise means the
// conclusion holds unconditionally).
func New[T comparable](premise, conclusion core.Set[T]) Implication[T] {
	return Implication[T]{
		premise:    premise.Clone(),
		conclusion: conclusion.Clone(),
	}
}

// Premise returns a copy of the premise set.
func (imp Implication[T]) Premise() core.Set[T] {
	return imp.premise.Clone()
}

// Conclusion returns a copy of the conclusion set.
func (imp Implication[T]) Conclusion() core.Set[T] {
	return imp.conclusion.Clone()
}

// Holds reports whether s respects the implication: either the premise
// is not contained in s, or the conclusion is.
func (imp Implication[T]) Holds(s core.Set[T]) bool {
	return !imp.premise.SubsetOf(s) || imp.conclusion.SubsetOf(s)
}
