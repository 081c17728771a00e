package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reindeer/gridgraph"
)

const (
	W = gridgraph.Wall
	o = gridgraph.Empty
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]gridgraph.Tile
		err  error
	}{
		{"EmptyRows", [][]gridgraph.Tile{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]gridgraph.Tile{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]gridgraph.Tile{{W, o}, {W}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.rows)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_Copies ensures later mutation of the input does not leak in.
func TestNewGrid_Copies(t *testing.T) {
	rows := [][]gridgraph.Tile{{o, W}}
	g, err := gridgraph.NewGrid(rows)
	require.NoError(t, err)
	rows[0][0] = W

	tile, ok := g.At(gridgraph.Pt(0, 0))
	assert.True(t, ok)
	assert.Equal(t, gridgraph.Empty, tile)
}

// TestInBounds checks InBounds and At on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]gridgraph.Tile{
		{W, o, W},
		{o, W, o},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	for _, c := range []gridgraph.Coordinates{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(c), "InBounds%v", c)
	}
	for _, c := range []gridgraph.Coordinates{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(c), "InBounds%v", c)
		tile, ok := g.At(c)
		assert.False(t, ok)
		assert.Equal(t, gridgraph.Wall, tile, "out-of-bounds reads as wall")
	}
}

// TestOpenNeighbors covers a plus-shaped junction and grid borders.
func TestOpenNeighbors(t *testing.T) {
	g, err := gridgraph.NewGrid([][]gridgraph.Tile{
		{W, o, W},
		{o, o, o},
		{W, W, W},
	})
	require.NoError(t, err)

	// Left, Right, Up, Down
	assert.Equal(t, [4]bool{true, true, true, false}, g.OpenNeighbors(gridgraph.Pt(1, 1)))
	assert.Equal(t, [4]bool{false, true, false, false}, g.OpenNeighbors(gridgraph.Pt(0, 1)))
	assert.Equal(t, [4]bool{false, false, false, true}, g.OpenNeighbors(gridgraph.Pt(1, 0)))
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := gridgraph.NewGrid([][]gridgraph.Tile{{o, o, o, o}, {o, o, o, o}})
	require.NoError(t, err)
	for i := 0; i < g.Width*g.Height; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, gridgraph.Pt(1, 1), g.Coordinate(5))
}

func TestDirection_StepAndOrientation(t *testing.T) {
	c := gridgraph.Pt(5, 5)
	assert.Equal(t, gridgraph.Pt(2, 5), gridgraph.Left.Step(c, 3))
	assert.Equal(t, gridgraph.Pt(6, 5), gridgraph.Right.Step(c, 1))
	assert.Equal(t, gridgraph.Pt(5, 0), gridgraph.Up.Step(c, 5))
	assert.Equal(t, gridgraph.Pt(5, 7), gridgraph.Down.Step(c, 2))

	assert.Equal(t, gridgraph.Horizontal, gridgraph.Left.Orientation())
	assert.Equal(t, gridgraph.Horizontal, gridgraph.Right.Orientation())
	assert.Equal(t, gridgraph.Vertical, gridgraph.Up.Orientation())
	assert.Equal(t, gridgraph.Vertical, gridgraph.Down.Orientation())
}

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, gridgraph.Pt(3, 3).ManhattanDistance(gridgraph.Pt(3, 3)))
	assert.Equal(t, 7, gridgraph.Pt(1, 5).ManhattanDistance(gridgraph.Pt(4, 1)))
	assert.Equal(t, 7, gridgraph.Pt(4, 1).ManhattanDistance(gridgraph.Pt(1, 5)))
}
