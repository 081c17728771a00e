package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/reindeer/gridgraph"
	"github.com/katalvlaran/reindeer/maze"
)

// latticeMaze returns an n×n maze with a wall post on every even crossing,
// which makes almost every open cell a junction.
func latticeMaze(b *testing.B, n int) *gridgraph.Maze {
	b.Helper()
	var sb strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch {
			case x == 0 || y == 0 || x == n-1 || y == n-1:
				sb.WriteByte('#')
			case x == 1 && y == n-2:
				sb.WriteByte('S')
			case x == n-2 && y == 1:
				sb.WriteByte('E')
			case x%2 == 0 && y%2 == 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	mz, err := gridgraph.ParseMazeString(sb.String())
	if err != nil {
		b.Fatalf("parse: %v", err)
	}

	return mz
}

// BenchmarkBuild measures graph compilation of a 141×141 lattice.
// Complexity: O(W×H)
func BenchmarkBuild(b *testing.B) {
	mz := latticeMaze(b, 141)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.Build(mz.Grid, mz.Start, mz.End); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve measures the full pipeline on the same lattice, where
// many routes tie.
// Complexity: O(W×H + E log E)
func BenchmarkSolve(b *testing.B) {
	mz := latticeMaze(b, 141)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.SolveMaze(mz); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveReference measures the pipeline on the 17×17 reference maze.
func BenchmarkSolveReference(b *testing.B) {
	mz := loadMaze(b, "example.2.txt")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := maze.SolveMaze(mz); err != nil {
			b.Fatal(err)
		}
	}
}
