package gridgraph

import (
	"golang.org/x/exp/constraints"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It copies the input so later mutation of rows does not leak into the Grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	tiles := make([]Tile, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		tiles = append(tiles, row...)
	}

	return &Grid{Width: w, Height: h, tiles: tiles}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// At returns the tile at c and whether c is inside the grid.
func (g *Grid) At(c Coordinates) (Tile, bool) {
	if !g.InBounds(c) {
		return Wall, false
	}

	return g.tiles[g.Index(c)], true
}

// IsOpen reports whether c is inside the grid and not a wall.
func (g *Grid) IsOpen(c Coordinates) bool {
	t, ok := g.At(c)

	return ok && t == Empty
}

// OpenNeighbors reports, for each of Left, Right, Up, Down (see Directions),
// whether the neighbouring cell is open. Out-of-bounds neighbours count as walls.
// Complexity: O(1).
func (g *Grid) OpenNeighbors(c Coordinates) [4]bool {
	var open [4]bool
	for i, d := range Directions {
		open[i] = g.IsOpen(d.Step(c, 1))
	}

	return open
}

// Index maps c to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coordinates) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to Coordinates.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinates {
	return Coordinates{X: idx % g.Width, Y: idx / g.Width}
}

// Step returns c moved n cells in direction d. The result may lie outside any grid.
func (d Direction) Step(c Coordinates, n int) Coordinates {
	switch d {
	case Left:
		c.X -= n
	case Right:
		c.X += n
	case Up:
		c.Y -= n
	case Down:
		c.Y += n
	}

	return c
}

// Orientation returns the axis d moves along.
func (d Direction) Orientation() Orientation {
	if d == Up || d == Down {
		return Vertical
	}

	return Horizontal
}

// ManhattanDistance returns |dx| + |dy| between c and o.
func (c Coordinates) ManhattanDistance(o Coordinates) int {
	return absDiff(c.X, o.X) + absDiff(c.Y, o.Y)
}

func absDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}
