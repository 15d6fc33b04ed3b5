package core

// Set is a finite set of comparable elements, backed by a Go map.
//
// The zero value (a nil map) is a valid empty set for read operations
// (Has, Len, Elements, SubsetOf, Equal) but must not be mutated; construct
// writable sets with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a new Set containing the given elements.
// Duplicates among elems collapse silently, as with any set.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}

	return s
}

// Add inserts e into s. Adding an existing element is a no-op.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Remove deletes e from s. Removing an absent element is a no-op.
func (s Set[T]) Remove(e T) {
	delete(s, e)
}

// Has reports whether e is a member of s.
func (s Set[T]) Has(e T) bool {
	_, ok := s[e]

	return ok
}

// Len returns the cardinality of s.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s Set[T]) Clone() Set[T] {
	c := make(Set[T], len(s))
	for e := range s {
		c[e] = struct{}{}
	}

	return c
}

// Union returns a new set holding every element of s or other.
// Neither operand is modified.
func (s Set[T]) Union(other Set[T]) Set[T] {
	u := make(Set[T], len(s)+len(other))
	for e := range s {
		u[e] = struct{}{}
	}
	for e := range other {
		u[e] = struct{}{}
	}

	return u
}

// Intersect returns a new set holding every element present in both s and
// other. The smaller operand drives the scan.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set[T])
	for e := range small {
		if _, ok := large[e]; ok {
			out[e] = struct{}{}
		}
	}

	return out
}

// Diff returns a new set holding every element of s absent from other.
func (s Set[T]) Diff(other Set[T]) Set[T] {
	out := make(Set[T])
	for e := range s {
		if _, ok := other[e]; !ok {
			out[e] = struct{}{}
		}
	}

	return out
}

// SubsetOf reports whether every element of s belongs to other.
// The empty set is a subset of everything.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	if len(s) > len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether s and other contain exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Elements returns the members of s as a slice in unspecified order.
// Callers needing a stable order must sort against their own ground
// sequence; the Set itself carries none.
func (s Set[T]) Elements() []T {
	out := make([]T, 0, len(s))
	for e := range s {
		out = append(out, e)
	}

	return out
}
