package core

// ClosureOperator maps any set over T to a closed superset of it.
//
// Implementations MUST be extensive, monotone, and idempotent (see the
// package documentation). They MUST NOT retain or mutate their argument:
// the engines pass internally owned sets and reuse them after the call.
// A well-behaved operator returns a fresh set (Clone the input when the
// closure adds nothing).
type ClosureOperator[T comparable] func(Set[T]) Set[T]

// Identity returns the closure operator under which every set is closed.
// Enumerating all closed sets of Identity over a ground sequence of n
// elements therefore yields all 2ⁿ subsets.
func Identity[T comparable]() ClosureOperator[T] {
	return func(s Set[T]) Set[T] {
		return s.Clone()
	}
}
