package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// openMaze builds an n×n maze text with walls on the border and every
// odd row/column crossing, start bottom-left and end top-right.
func openMaze(n int) string {
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

	return sb.String()
}

// BenchmarkParseMaze measures parsing a 301×301 maze.
// Complexity: O(W×H)
func BenchmarkParseMaze(b *testing.B) {
	text := openMaze(301)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.ParseMazeString(text)
	}
}

// BenchmarkOpenRegions measures region labelling on the same maze.
// Complexity: O(W×H×4)
func BenchmarkOpenRegions(b *testing.B) {
	m, err := gridgraph.ParseMazeString(openMaze(301))
	if err != nil {
		b.Fatalf("setup ParseMaze failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Grid.OpenRegions()
	}
}
