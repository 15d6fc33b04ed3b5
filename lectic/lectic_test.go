package lectic_test

import (
	"testing"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subsetsOf enumerates all subsets of elems via bitmask, in mask order.
func subsetsOf(elems []string) []core.Set[string] {
	out := make([]core.Set[string], 0, 1<<len(elems))
	for mask := 0; mask < 1<<len(elems); mask++ {
		s := core.NewSet[string]()
		for i, e := range elems {
			if mask&(1<<i) != 0 {
				s.Add(e)
			}
		}
		out = append(out, s)
	}

	return out
}

// TestNewGround_RejectsDuplicates verifies the fail-fast duplicate check.
func TestNewGround_RejectsDuplicates(t *testing.T) {
	_, err := lectic.NewGround([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, lectic.ErrDuplicateElement, "duplicate must be rejected")

	g, err := lectic.NewGround([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
}

// TestGround_Accessors covers At, Pos and the defensive copies of
// Elements and the constructor.
func TestGround_Accessors(t *testing.T) {
	src := []string{"x", "y", "z"}
	g, err := lectic.NewGround(src)
	require.NoError(t, err)

	assert.Equal(t, "y", g.At(1))
	i, ok := g.Pos("z")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = g.Pos("missing")
	assert.False(t, ok)

	// Mutating the input or the returned slice must not leak in.
	src[0] = "corrupted"
	got := g.Elements()
	got[1] = "corrupted"
	assert.Equal(t, []string{"x", "y", "z"}, g.Elements())
}

// TestLessAt_Definition checks the per-pivot comparison against its
// definition: pivot flips in, everything earlier agrees.
func TestLessAt_Definition(t *testing.T) {
	g, err := lectic.NewGround([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	a := core.NewSet("a", "c")
	b := core.NewSet("a", "b")

	// b branches off from a at "b": "b" ∈ b \ a and they agree on "a".
	assert.True(t, g.LessAt("b", a, b))
	// "c" belongs to a, not b, so it cannot be a branching pivot of a<b.
	assert.False(t, g.LessAt("c", a, b))
	// "d" is in neither set.
	assert.False(t, g.LessAt("d", a, b))
	// A pivot outside the ground never relates two sets.
	assert.False(t, g.LessAt("zz", a, b))
}

// TestLess_Totality verifies the core order property: over all pairs of
// distinct subsets of a 4-element ground, exactly one of Less(a,b),
// Less(b,a) holds — and neither holds for equal sets.
func TestLess_Totality(t *testing.T) {
	elems := []string{"a", "b", "c", "d"}
	g, err := lectic.NewGround(elems)
	require.NoError(t, err)

	subs := subsetsOf(elems)
	for i, a := range subs {
		for j, b := range subs {
			ab, ba := g.Less(a, b), g.Less(b, a)
			if i == j {
				assert.False(t, ab || ba, "no set is below itself")
				continue
			}
			assert.True(t, ab != ba,
				"exactly one direction must hold for %v vs %v", a.Elements(), b.Elements())
		}
	}
}

// TestLess_AgreesWithSomePivot cross-checks Less against LessAt: whenever
// Less(a,b) holds, some ground pivot witnesses it, and vice versa.
func TestLess_AgreesWithSomePivot(t *testing.T) {
	elems := []string{"a", "b", "c"}
	g, err := lectic.NewGround(elems)
	require.NoError(t, err)

	subs := subsetsOf(elems)
	for _, a := range subs {
		for _, b := range subs {
			witnessed := false
			for _, p := range elems {
				if g.LessAt(p, a, b) {
					witnessed = true
					break
				}
			}
			assert.Equal(t, g.Less(a, b), witnessed,
				"Less and ∃-pivot LessAt must agree on %v vs %v", a.Elements(), b.Elements())
		}
	}
}

// TestLess_IgnoresForeignElements verifies that elements outside the
// ground sequence do not influence comparison.
func TestLess_IgnoresForeignElements(t *testing.T) {
	g, err := lectic.NewGround([]string{"a", "b"})
	require.NoError(t, err)

	a := core.NewSet("a", "zz")
	b := core.NewSet("a", "b")
	assert.True(t, g.Less(a, b), "foreign element zz must not matter")
	assert.False(t, g.Less(b, a))

	// Equal modulo foreign elements means incomparable both ways.
	assert.False(t, g.Less(core.NewSet("a", "zz"), core.NewSet("a")))
	assert.False(t, g.Less(core.NewSet("a"), core.NewSet("a", "zz")))
}

// TestLess_BasicOrderIsPositional pins down that the first ground
// position decides: with ground [3,2,1], {1} < {2} < {3} holds because 3
// is the earliest position, so sets containing 3 are lectically largest.
func TestLess_BasicOrderIsPositional(t *testing.T) {
	g, err := lectic.NewGround([]int{3, 2, 1})
	require.NoError(t, err)

	s1 := core.NewSet(1)
	s2 := core.NewSet(2)
	s3 := core.NewSet(3)

	assert.True(t, g.Less(s1, s2))
	assert.True(t, g.Less(s2, s3))
	assert.True(t, g.Less(s1, s3))
	assert.True(t, g.Less(core.NewSet[int](), s1), "empty set is the minimum")
}
