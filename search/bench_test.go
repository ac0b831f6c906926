package search_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// BenchmarkSolve measures corner-to-corner runs on random-cost square grids.
func BenchmarkSolve(b *testing.B) {
	for _, size := range []int{16, 48} {
		for _, mode := range allModes {
			b.Run(fmt.Sprintf("%s/%dx%d", mode, size, size), func(b *testing.B) {
				g := randomGrid(b, rand.New(rand.NewSource(1)), size, size, 1, 10)
				start := node(b, g, 0, 0)
				goal := node(b, g, size-1, size-1)

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = search.Solve(context.Background(), g, start, goal, mode)
				}
			})
		}
	}
}

// BenchmarkNext isolates a single A* round on a fresh 32×32 grid.
func BenchmarkNext(b *testing.B) {
	g, _ := grid.New(32, 32)
	start, _ := g.At(0, 0)
	goal, _ := g.At(31, 31)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		run, _ := search.Run(g, start, goal, search.AStar)
		b.StartTimer()
		_, _ = run.Next()
	}
}
