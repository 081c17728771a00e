// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/reindeer.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidTile indicates a maze character that is not one of "#.SE".
	ErrInvalidTile = errors.New("gridgraph: invalid maze character")
	// ErrMissingStart indicates maze text without an 'S' marker.
	ErrMissingStart = errors.New("gridgraph: maze has no start marker")
	// ErrMissingEnd indicates maze text without an 'E' marker.
	ErrMissingEnd = errors.New("gridgraph: maze has no end marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'E' marker.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or end marker")
)

// Tile is the content of a single grid cell. Tiles never change once a Grid is built.
type Tile uint8

const (
	// Empty is an open cell that can be walked through.
	Empty Tile = iota
	// Wall blocks movement.
	Wall
)

// String returns the maze character for t.
func (t Tile) String() string {
	if t == Wall {
		return "#"
	}

	return "."
}

// Coordinates is a cell position; X grows to the right, Y grows downward.
type Coordinates struct {
	X, Y int
}

// Pt is shorthand for Coordinates{X: x, Y: y}.
func Pt(x, y int) Coordinates { return Coordinates{X: x, Y: y} }

// String formats c as "(x,y)".
func (c Coordinates) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Orientation is the axis a mover is facing along.
type Orientation uint8

const (
	// Horizontal is the x axis (facing left or right).
	Horizontal Orientation = iota
	// Vertical is the y axis (facing up or down).
	Vertical
)

// String returns "-" for Horizontal and "|" for Vertical.
func (o Orientation) String() string {
	if o == Vertical {
		return "|"
	}

	return "-"
}

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists the cardinal directions in the order OpenNeighbors reports them.
var Directions = [4]Direction{Left, Right, Up, Down}

// Grid is an immutable Width×Height raster of tiles, stored row-major.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// Maze is a parsed maze: its grid plus the start and end markers.
type Maze struct {
	Grid  *Grid
	Start Coordinates
	End   Coordinates
}
