package nextclosure_test

import (
	"fmt"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/lectic"
	"github.com/formalkit/fca/nextclosure"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEnumerator
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Enumerate every subset of the ground sequence [3,2,1] — under the
//	identity operator every set is closed, so the full powerset appears,
//	in strictly increasing lectic order.
//
// Note the basic order: 3 occupies the earliest position, so sets
// containing 3 are lectically largest and come last.
//
// Complexity: O(2ⁿ) sets, O(n) closure probes per transition.
func ExampleEnumerator() {
	g, err := lectic.NewGround([]int{3, 2, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	enum, err := nextclosure.New(g, core.Identity[int]())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for s, ok := enum.Next(); ok; s, ok = enum.Next() {
		// Render each set in ground order for stable output.
		row := make([]int, 0, s.Len())
		for _, e := range g.Elements() {
			if s.Has(e) {
				row = append(row, e)
			}
		}
		fmt.Println(row)
	}
	// Output:
	// []
	// [1]
	// [2]
	// [2 1]
	// [3]
	// [3 1]
	// [3 2]
	// [3 2 1]
}
