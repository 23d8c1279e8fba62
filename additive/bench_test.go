package additive_test

import (
	"testing"

	"github.com/katalvlaran/presswork/additive"
	"github.com/katalvlaran/presswork/effect"
)

// benchMachine is a wide instance with several free variables.
func benchMachine() ([]int, []effect.Button) {
	targets := []int{38, 51, 44, 60, 27, 33, 49, 41}
	buttons := mkButtons([][]int{
		{0, 1, 2}, {1, 3, 5}, {2, 4, 6}, {0, 7}, {3, 4}, {5, 6, 7},
		{0, 2, 4, 6}, {1, 3, 5, 7}, {2, 3}, {6, 7}, {0, 5},
	})

	return targets, buttons
}

func BenchmarkSolve_Exact(b *testing.B) {
	targets, buttons := benchMachine()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = additive.Solve(targets, buttons)
	}
}

func BenchmarkSolve_Float(b *testing.B) {
	targets, buttons := benchMachine()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = additive.Solve(targets, buttons, additive.WithArithmetic(additive.Float))
	}
}
