package implications_test

import (
	"math/rand"
	"testing"

	"github.com/formalkit/fca/core"
	"github.com/formalkit/fca/implications"
)

// benchmarkClose closes a fixed random start set under count random
// implications over the given universe, reusing one Index across
// iterations (the intended amortized usage).
func benchmarkClose(b *testing.B, universe, count int) {
	rng := rand.New(rand.NewSource(42))
	randomSet := func(maxLen int) core.Set[int] {
		s := core.NewSet[int]()
		for n := rng.Intn(maxLen + 1); s.Len() < n; {
			s.Add(rng.Intn(universe))
		}

		return s
	}

	imps := make([]implications.Implication[int], count)
	for i := range imps {
		imps[i] = implications.New(randomSet(4), randomSet(5))
	}
	ix := implications.NewIndex(imps)
	start := randomSet(6)

	b.ResetTimer() // ignore index construction
	for i := 0; i < b.N; i++ {
		_ = ix.Close(start)
	}
}

// BenchmarkClose_500 closes under 500 implications over 80 attributes.
func BenchmarkClose_500(b *testing.B) {
	benchmarkClose(b, 80, 500)
}

// BenchmarkClose_5000 closes under 5000 implications over 300 attributes.
func BenchmarkClose_5000(b *testing.B) {
	benchmarkClose(b, 300, 5000)
}

// BenchmarkNewIndex_5000 measures the amortized preprocessing phase.
func BenchmarkNewIndex_5000(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	randomSet := func(maxLen int) core.Set[int] {
		s := core.NewSet[int]()
		for n := rng.Intn(maxLen + 1); s.Len() < n; {
			s.Add(rng.Intn(300))
		}

		return s
	}
	imps := make([]implications.Implication[int], 5000)
	for i := range imps {
		imps[i] = implications.New(randomSet(4), randomSet(5))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = implications.NewIndex(imps)
	}
}
