package loopgen_test

import (
	"testing"

	"github.com/katalvlaran/looptopo/loopgen"
)

// BenchmarkGenerate_10x10 measures unbiased generation on a 10×10 grid.
func BenchmarkGenerate_10x10(b *testing.B) {
	g, err := loopgen.NewSquareGrid(10, 10)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = loopgen.Generate(g, loopgen.WithSeed(int64(i)+1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_25x25 measures unbiased generation on a 25×25 grid,
// where candidate-set churn dominates.
func BenchmarkGenerate_25x25(b *testing.B) {
	g, err := loopgen.NewSquareGrid(25, 25)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = loopgen.Generate(g, loopgen.WithSeed(int64(i)+1)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Biased measures the bias-probing path, which scores
// every candidate of the chosen colour at each step.
func BenchmarkGenerate_Biased(b *testing.B) {
	g, err := loopgen.NewSquareGrid(10, 10)
	if err != nil {
		b.Fatal(err)
	}
	bias := func(_ []loopgen.Color, face int) int { return face & 3 }

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = loopgen.Generate(g, loopgen.WithSeed(int64(i)+1), loopgen.WithBias(bias)); err != nil {
			b.Fatal(err)
		}
	}
}
