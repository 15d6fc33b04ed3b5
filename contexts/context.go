package contexts

import (
	"fmt"

	"github.com/formalkit/fca/core"
)

// Incidence is one explicit (object, attribute) entry of the relation.
type Incidence[G, M comparable] struct {
	Object    G
	Attribute M
}

// Context is a formal context: finite sequences of objects and
// attributes plus an incidence relation between them. It is immutable
// after construction; the attribute order fixes the ground sequence used
// by Intents and Concepts.
type Context[G, M comparable] struct {
	objects    []G
	attributes []M

	// rows maps each object to its attribute row; cols is the transpose.
	rows map[G]core.Set[M]
	cols map[M]core.Set[G]
}

// newContext validates the object and attribute sequences and prepares
// empty incidence rows and columns.
func newContext[G, M comparable](objects []G, attributes []M) (*Context[G, M], error) {
	c := &Context[G, M]{
		objects:    make([]G, len(objects)),
		attributes: make([]M, len(attributes)),
		rows:       make(map[G]core.Set[M], len(objects)),
		cols:       make(map[M]core.Set[G], len(attributes)),
	}
	copy(c.objects, objects)
	copy(c.attributes, attributes)

	for _, g := range c.objects {
		if _, dup := c.rows[g]; dup {
			return nil, fmt.Errorf("object %v: %w", g, ErrDuplicateObject)
		}
		c.rows[g] = core.NewSet[M]()
	}
	for _, m := range c.attributes {
		if _, dup := c.cols[m]; dup {
			return nil, fmt.Errorf("attribute %v: %w", m, ErrDuplicateAttribute)
		}
		c.cols[m] = core.NewSet[G]()
	}

	return c, nil
}

// relate records one incidence; both endpoints are already validated.
func (c *Context[G, M]) relate(g G, m M) {
	c.rows[g].Add(m)
	c.cols[m].Add(g)
}

// FromPairs builds a context from explicit incidence pairs. Every pair
// must reference a declared object and attribute; violations surface as
// ErrUnknownObject / ErrUnknownAttribute.
func FromPairs[G, M comparable](objects []G, attributes []M, incidence []Incidence[G, M]) (*Context[G, M], error) {
	c, err := newContext(objects, attributes)
	if err != nil {
		return nil, err
	}
	for _, in := range incidence {
		if _, ok := c.rows[in.Object]; !ok {
			return nil, fmt.Errorf("object %v: %w", in.Object, ErrUnknownObject)
		}
		if _, ok := c.cols[in.Attribute]; !ok {
			return nil, fmt.Errorf("attribute %v: %w", in.Attribute, ErrUnknownAttribute)
		}
		c.relate(in.Object, in.Attribute)
	}

	return c, nil
}

// FromRows builds a context from a total mapping of each object to its
// attribute row. Objects are taken from the objects sequence; a row for
// an undeclared object, or a row entry outside the declared attributes,
// is rejected. Missing rows mean "no attributes" for that object.
func FromRows[G, M comparable](objects []G, attributes []M, rows map[G][]M) (*Context[G, M], error) {
	c, err := newContext(objects, attributes)
	if err != nil {
		return nil, err
	}
	for g, row := range rows {
		if _, ok := c.rows[g]; !ok {
			return nil, fmt.Errorf("object %v: %w", g, ErrUnknownObject)
		}
		for _, m := range row {
			if _, ok := c.cols[m]; !ok {
				return nil, fmt.Errorf("attribute %v: %w", m, ErrUnknownAttribute)
			}
			c.relate(g, m)
		}
	}

	return c, nil
}

// FromFunc builds a context by probing the generator predicate for every
// (object, attribute) combination. Returns ErrNilIncidence for a nil
// generator.
//
// Complexity: O(|G|·|M|) predicate probes.
func FromFunc[G, M comparable](objects []G, attributes []M, incident func(G, M) bool) (*Context[G, M], error) {
	if incident == nil {
		return nil, ErrNilIncidence
	}
	c, err := newContext(objects, attributes)
	if err != nil {
		return nil, err
	}
	for _, g := range c.objects {
		for _, m := range c.attributes {
			if incident(g, m) {
				c.relate(g, m)
			}
		}
	}

	return c, nil
}

// Objects returns a copy of the object sequence in declaration order.
func (c *Context[G, M]) Objects() []G {
	out := make([]G, len(c.objects))
	copy(out, c.objects)

	return out
}

// Attributes returns a copy of the attribute sequence in declaration
// order; this order is the ground sequence of Intents and Concepts.
func (c *Context[G, M]) Attributes() []M {
	out := make([]M, len(c.attributes))
	copy(out, c.attributes)

	return out
}

// Incident reports whether object g carries attribute m. Unknown
// endpoints are simply not incident.
func (c *Context[G, M]) Incident(g G, m M) bool {
	row, ok := c.rows[g]

	return ok && row.Has(m)
}
