// Package contexts provides formal contexts — finite object × attribute
// incidence relations — and the derivation operators that turn them into
// closure operators for the fca engines.
//
// A Context is built through a small closed set of explicitly tagged
// construction variants, one constructor per input kind:
//
//   - FromPairs: explicit (object, attribute) incidence pairs
//   - FromRows:  a total mapping from each object to its attribute row
//   - FromFunc:  a generator predicate incident(object, attribute)
//
// Every constructor validates its input up front (duplicate objects or
// attributes, pairs referencing unknown elements) and returns sentinel
// errors; a constructed Context is immutable and safe to share.
//
// Derivation:
//
//	Intent(A) — attributes common to every object of A (Intent(∅) = M)
//	Extent(B) — objects carrying every attribute of B (Extent(∅) = G)
//
// The composition B ↦ Intent(Extent(B)) is a closure operator on
// attribute sets; IntentClosure packages it for the nextclosure
// enumerator, and Intents/Concepts drive the full enumeration of the
// concept lattice's intents in lectic order.
//
// The package stops at in-memory construction and derivation: no
// parsing, printing, or persistence.
package contexts
