package contexts

import (
	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
	"github.com/formalkit/fca/nextclosure"
)

// Concept is a formal concept of a context: a maximal extent/intent
// rectangle. Extent = objects carrying every intent attribute; Intent =
// attributes common to every extent object.
type Concept[G, M comparable] struct {
	Extent core.Set[G]
	Intent core.Set[M]
}

// Intent returns the attributes common to every object of objs.
// Intent(∅) is the full attribute set. Elements of objs outside the
// context contribute nothing (they are not objects of the relation).
//
// Complexity: O(|G'|·|M|) with G' the known members of objs.
func (c *Context[G, M]) Intent(objs core.Set[G]) core.Set[M] {
	common := core.NewSet(c.attributes...)
	for g := range objs {
		row, ok := c.rows[g]
		if !ok {
			continue
		}
		common = common.Intersect(row)
	}

	return common
}

// Extent returns the objects carrying every attribute of attrs.
// Extent(∅) is the full object set; unknown attributes are ignored.
func (c *Context[G, M]) Extent(attrs core.Set[M]) core.Set[G] {
	shared := core.NewSet(c.objects...)
	for m := range attrs {
		col, ok := c.cols[m]
		if !ok {
			continue
		}
		shared = shared.Intersect(col)
	}

	return shared
}

// IntentClosure packages the double derivation B ↦ Intent(Extent(B)) as
// a closure operator on subsets of the context's attributes. It is
// extensive, monotone and idempotent there; sets containing attributes
// outside the context violate the operator contract (the closure drops
// them) and are the caller's responsibility to avoid.
func (c *Context[G, M]) IntentClosure() core.ClosureOperator[M] {
	return func(b core.Set[M]) core.Set[M] {
		return c.Intent(c.Extent(b))
	}
}

// Intents enumerates every concept intent of the context in strictly
// increasing lectic order over the declared attribute order.
//
// Complexity: O(#intents · |M|) closure evaluations.
func (c *Context[G, M]) Intents() ([]core.Set[M], error) {
	g, err := lectic.NewGround(c.attributes)
	if err != nil {
		// Unreachable: construction already rejected duplicates.
		return nil, err
	}

	return nextclosure.AllClosedSets(g, c.IntentClosure())
}

// Concepts enumerates every formal concept, ordered by its intent in
// strictly increasing lectic order (extents correspondingly shrink from
// the full object set downward, though not monotonically).
func (c *Context[G, M]) Concepts() ([]Concept[G, M], error) {
	intents, err := c.Intents()
	if err != nil {
		return nil, err
	}

	out := make([]Concept[G, M], len(intents))
	for i, b := range intents {
		out[i] = Concept[G, M]{Extent: c.Extent(b), Intent: b}
	}

	return out, nil
}
