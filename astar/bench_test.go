package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/maze"
)

// BenchmarkSearch_Open100 measures a corner-to-corner search on an empty
// 100×100 field. Complexity: O(W×H) worst case.
func BenchmarkSearch_Open100(b *testing.B) {
	m := maze.MustBuild(100, 100, maze.C(0, 0), maze.C(99, 99))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m)
	}
}

// BenchmarkSearch_Serpentine measures a 200×200 maze whose only route
// sweeps every other row, so the trail grows to ~20k cells.
func BenchmarkSearch_Serpentine(b *testing.B) {
	m := serpentine(200, 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m)
	}
}

// BenchmarkSearch_Random measures 30% wall density on a 150×150 field.
func BenchmarkSearch_Random(b *testing.B) {
	m := randomMaze(rand.New(rand.NewSource(1)), 150, 150, 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(m)
	}
}
