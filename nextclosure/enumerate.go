package nextclosure

import (
	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
)

// NextClosedSet returns the lectically smallest closed set strictly
// greater than a, or (nil, false) when a is the lectic maximum.
//
// Complexity: at most |G| closure evaluations; each pivot is probed at
// most once per transition.
func NextClosedSet[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], a core.Set[T]) (core.Set[T], bool) {
	return nextInFamily(g, clop, nil, a)
}

// NextClosedSetInFamily behaves like NextClosedSet but additionally
// requires the accepted candidate to satisfy pred. The family must be
// closed under the algorithm's truncation step (see WithFamily); a nil
// pred is treated as unrestricted.
func NextClosedSetInFamily[T comparable](pred func(core.Set[T]) bool, g *lectic.Ground[T], clop core.ClosureOperator[T], a core.Set[T]) (core.Set[T], bool) {
	return nextInFamily(g, clop, pred, a)
}

// nextInFamily is the shared transition: scan pivots from the last
// ground position toward the first, propose oplus candidates, accept the
// first one that branches exactly at its pivot (and satisfies pred).
func nextInFamily[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], pred func(core.Set[T]) bool, a core.Set[T]) (core.Set[T], bool) {
	for k := g.Len() - 1; k >= 0; k-- {
		e := g.At(k)
		// 1. Pivots already present cannot flip in.
		if a.Has(e) {
			continue
		}
		// 2. Propose the minimal closed candidate differing first at e.
		b := oplusAt(g, clop, a, k)
		// 3. Accept iff the candidate branches off exactly at e: the
		//    closure added nothing earlier than the pivot.
		if !g.LessAt(e, a, b) {
			continue
		}
		// 4. Family restriction, when present.
		if pred != nil && !pred(b) {
			continue
		}

		return b, true
	}

	// No pivot qualifies: a is the lectic maximum of the (restricted)
	// closed-set family.
	return nil, false
}

// Enumerator is the explicit state machine over the closed-set sequence:
// it exposes the current closed set via Next and advances on demand.
// Abandoning it partially consumed is always safe; it is not restartable.
//
// Returned sets are owned by the caller for reading but feed the next
// transition internally — do not mutate them while iterating.
type Enumerator[T comparable] struct {
	ground  *lectic.Ground[T]
	clop    core.ClosureOperator[T]
	opts    options[T]
	current core.Set[T]
	started bool
	done    bool
}

// New creates an Enumerator over the fixed ground order g.
// The first Next produces clop(initial) (clop(∅) by default), then each
// call produces the lectic successor until the sequence is exhausted.
func New[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], opts ...Option[T]) (*Enumerator[T], error) {
	if g == nil {
		return nil, ErrNilGround
	}
	if clop == nil {
		return nil, ErrNilOperator
	}
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Enumerator[T]{ground: g, clop: clop, opts: o}, nil
}

// NewFromSet creates an Enumerator over an unordered ground set: the
// order is first fixed by ImproveOrder, then enumeration proceeds as in
// New. Returns lectic.ErrDuplicateElement if elems repeats an element.
func NewFromSet[T comparable](elems []T, clop core.ClosureOperator[T], opts ...Option[T]) (*Enumerator[T], error) {
	ordered, err := ImproveOrder(elems, clop)
	if err != nil {
		return nil, err
	}
	g, err := lectic.NewGround(ordered)
	if err != nil {
		return nil, err
	}

	return New(g, clop, opts...)
}

// Ground returns the ground sequence the enumerator iterates over,
// including any reordering applied by NewFromSet.
func (e *Enumerator[T]) Ground() *lectic.Ground[T] {
	return e.ground
}

// Next returns the next closed set in strictly increasing lectic order
// and true, or (nil, false) once the sequence is exhausted.
//
// The first call closes the initial set; with a family restriction it
// seeks the lectically first family member reachable from it.
func (e *Enumerator[T]) Next() (core.Set[T], bool) {
	if e.done {
		return nil, false
	}

	if !e.started {
		e.started = true
		initial := e.opts.initial
		if initial == nil {
			initial = core.NewSet[T]()
		}
		first := e.clop(initial)
		if e.opts.family != nil && !e.opts.family(first) {
			// Seek the lectically first family member beyond it.
			next, ok := nextInFamily(e.ground, e.clop, e.opts.family, first)
			if !ok {
				e.done = true

				return nil, false
			}
			first = next
		}
		e.current = first

		return e.current, true
	}

	next, ok := nextInFamily(e.ground, e.clop, e.opts.family, e.current)
	if !ok {
		e.done = true
		e.current = nil

		return nil, false
	}
	e.current = next

	return e.current, true
}

// All drains the remaining sequence into a slice. Calling it on a fresh
// Enumerator collects every closed set.
func (e *Enumerator[T]) All() []core.Set[T] {
	var out []core.Set[T]
	for s, ok := e.Next(); ok; s, ok = e.Next() {
		out = append(out, s)
	}

	return out
}

// AllClosedSets enumerates every closed set of clop over the fixed
// ground order g, in strictly increasing lectic order. It is the
// collect-everything convenience over New + Next.
func AllClosedSets[T comparable](g *lectic.Ground[T], clop core.ClosureOperator[T], opts ...Option[T]) ([]core.Set[T], error) {
	e, err := New(g, clop, opts...)
	if err != nil {
		return nil, err
	}

	return e.All(), nil
}
