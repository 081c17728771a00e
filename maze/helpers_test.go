package maze_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/gridgraph"
	"github.com/katalvlaran/reindeer/maze"
)

// Small hand-made mazes shared by the tests.
const (
	// corridorMaze is a single straight corridor with no turns.
	corridorMaze = "#######\n#S...E#\n#######\n"

	// lMaze needs exactly one turn: 2 cells right, turn, 2 cells down.
	lMaze = "#####\n#S..#\n###.#\n###E#\n#####\n"

	// ringMaze has two mirror-image routes of equal cost around a wall block.
	ringMaze = "#######\n#.....#\n#S###E#\n#.....#\n#######\n"

	// splitMaze has start and end in separate regions.
	splitMaze = "#####\n#S#E#\n#####\n"
)

// loadMaze parses testdata/<name>.
func loadMaze(t testing.TB, name string) *gridgraph.Maze {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	mz, err := gridgraph.ParseMaze(f)
	require.NoError(t, err)

	return mz
}

// parseMaze parses an inline maze.
func parseMaze(t testing.TB, text string) *gridgraph.Maze {
	t.Helper()
	mz, err := gridgraph.ParseMazeString(text)
	require.NoError(t, err)

	return mz
}

// buildMaze compiles mz with opts.
func buildMaze(t testing.TB, mz *gridgraph.Maze, opts ...maze.Option) *maze.Map {
	t.Helper()
	m, err := maze.Build(mz.Grid, mz.Start, mz.End, opts...)
	require.NoError(t, err)

	return m
}

// terminalTieMaze builds a 508×7 maze in which the end is reached at exactly
// the same cost (3009) facing either axis:
//
//   - vertically, with three turns, down column 2 and up into the end from below (10 cells);
//   - horizontally, with two turns, east along row 1 for 505 cells and back west along row 3.
func terminalTieMaze(t testing.TB) *gridgraph.Maze {
	t.Helper()
	const (
		endX = 4
		far  = endX + 502 // east turning column
	)
	w, h := far+2, 7
	rows := make([][]gridgraph.Tile, h)
	for y := range rows {
		rows[y] = make([]gridgraph.Tile, w)
		for x := range rows[y] {
			rows[y][x] = gridgraph.Wall
		}
	}
	open := func(x, y int) { rows[y][x] = gridgraph.Empty }
	for x := 1; x <= far; x++ {
		open(x, 1)
	}
	for y := 2; y <= 5; y++ {
		open(2, y)
	}
	for y := 2; y <= 3; y++ {
		open(far, y)
	}
	for x := endX; x <= far; x++ {
		open(x, 3)
	}
	open(endX, 4)
	for x := 2; x <= endX; x++ {
		open(x, 5)
	}

	grid, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)

	return &gridgraph.Maze{Grid: grid, Start: gridgraph.Pt(1, 1), End: gridgraph.Pt(endX, 3)}
}

// assertWellFormed checks the structural invariants of a compiled map:
// node pairs joined by exactly one Turn, Move edges axis-aligned, same
// orientation, never crossing a wall and never skipping a decision point.
func assertWellFormed(t *testing.T, m *maze.Map, grid *gridgraph.Grid) {
	t.Helper()
	g := m.Graph
	require.Zero(t, g.NodeCount()%2, "nodes come in orientation pairs")

	turns := 0
	for _, id := range g.Edges() {
		a, b := g.Endpoints(id)
		p, q := g.Node(a), g.Node(b)
		edge := g.Edge(id)
		if edge.Kind == maze.Turn {
			turns++
			assert.Equal(t, p.At, q.At, "turn %d joins one coordinate", id)
			assert.NotEqual(t, p.Orientation, q.Orientation, "turn %d joins both orientations", id)
			continue
		}

		require.Equal(t, p.Orientation, q.Orientation, "move %d keeps orientation", id)
		assert.Equal(t, p.At.ManhattanDistance(q.At), edge.Distance, "move %d distance", id)
		assert.Positive(t, edge.Distance)
		dir := gridgraph.Right
		if p.Orientation == gridgraph.Vertical {
			require.Equal(t, p.At.X, q.At.X, "vertical move %d stays in its column", id)
			dir = gridgraph.Down
		} else {
			require.Equal(t, p.At.Y, q.At.Y, "horizontal move %d stays in its row", id)
		}
		from, to := p.At, q.At
		if from.X > to.X || from.Y > to.Y {
			from, to = to, from
		}
		for c := dir.Step(from, 1); c != to; c = dir.Step(c, 1) {
			assert.True(t, grid.IsOpen(c), "move %d crosses wall at %v", id, c)
			_, _, isNode := m.NodesAt(c)
			assert.False(t, isNode, "move %d skips decision point %v", id, c)
		}
	}
	assert.Equal(t, g.NodeCount()/2, turns, "one turn per decision point")
}
