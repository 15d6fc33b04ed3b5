package implications_test

import (
	"fmt"
	"sort"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/implications"
)

// ExampleIndex_Close closes {1} under a four-link implication chain:
// every link fires exactly once and the whole chain unrolls.
func ExampleIndex_Close() {
	ix := implications.NewIndex([]implications.Implication[int]{
		implications.New(core.NewSet(1), core.NewSet(2)),
		implications.New(core.NewSet(2), core.NewSet(3)),
		implications.New(core.NewSet(3), core.NewSet(4)),
		implications.New(core.NewSet(4), core.NewSet(5)),
	})

	closed := ix.Close(core.NewSet(1))

	out := closed.Elements()
	sort.Ints(out)
	fmt.Println(out)
	// Output:
	// [1 2 3 4 5]
}
