package nextclosure

import "github.com/formalkit/fca/core"

// Option configures an Enumerator via functional arguments.
type Option[T comparable] func(*options[T])

// options holds the resolved enumeration settings.
type options[T comparable] struct {
	// initial seeds the enumeration: the first produced set is
	// clop(initial). Nil means start from the empty set.
	initial core.Set[T]

	// family, when non-nil, restricts enumeration to closed sets
	// satisfying the predicate. See WithFamily for the precondition.
	family func(core.Set[T]) bool
}

// defaultOptions returns the default settings: start from the empty set,
// no family restriction.
func defaultOptions[T comparable]() options[T] {
	return options[T]{}
}

// WithInitial seeds the enumeration at clop(initial) instead of clop(∅).
// The set is not copied; callers must not mutate it afterwards.
func WithInitial[T comparable](initial core.Set[T]) Option[T] {
	return func(o *options[T]) {
		if initial != nil {
			o.initial = initial
		}
	}
}

// WithFamily restricts enumeration to closed sets satisfying pred.
//
// Correctness precondition (caller's responsibility, never validated):
// for any set A in the family and any truncation of A below a ground
// position, the closure of that truncation must remain in the family.
// An incompatible predicate silently skips members of the intended
// family. A nil pred leaves the enumeration unrestricted.
func WithFamily[T comparable](pred func(core.Set[T]) bool) Option[T] {
	return func(o *options[T]) {
		if pred != nil {
			o.family = pred
		}
	}
}
