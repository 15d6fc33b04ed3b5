// Package fca is an in-memory toolkit for closure operators and formal
// concept analysis — from set-algebra primitives to Next-Closure
// enumeration and linear-time implication closure.
//
// 🚀 What is fca?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Set primitives: generic map-backed sets, cross product, disjoint
//		  union, transitive closure, function-graph test
//		• Lectic order: the canonical total order on subsets of an ordered
//		  ground sequence
//		• Next-Closure: gap-free enumeration of all closed sets of an
//		  arbitrary closure operator, in strictly increasing lectic order
//		• Downing–Gallier: closure of a set under a collection of
//		  implications in time linear in the total implication size
//		• Formal contexts: incidence relations, derivation operators, and
//		  concept (intent/extent) enumeration built on the two engines
//
// ✨ Why choose fca?
//
//   - Minimal API, clear naming, explicit state — no magic sequences
//   - Pure Go – no cgo, no hidden deps, fully deterministic
//   - Engines compose: any implication set yields a closure operator that
//     plugs straight into the enumerator
//
// Under the hood, everything is organized under six subpackages:
//
//	core/         — generic Set type and the ClosureOperator contract
//	setops/       — cross product, disjoint union, relation closure
//	lectic/       — ordered ground sequences and lectic comparison
//	nextclosure/  — the Next-Closure enumerator and base-order optimizer
//	implications/ — the Downing–Gallier implication-closure engine
//	contexts/     — formal contexts, derivation, concept enumeration
//
// Quick ASCII example:
//
//	    {1,2,3}
//	    /  |  \
//	{1,2} {1,3} {2,3}      a closed-set lattice, visited by the
//	    \  |  /            enumerator in lectic order, smallest first.
//	      {}
//
// Dive into the per-package doc.go files for full examples, complexity
// notes, and the contracts every closure operator must satisfy.
//
//	go get github.com/formalkit/fca
package fca
