package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Maze characters.
const (
	wallChar  = '#'
	emptyChar = '.'
	startChar = 'S'
	endChar   = 'E'
	markChar  = 'O'
)

// ParseMaze reads a maze in the textual format: one row per line, '#' for a
// wall, '.' for an open cell, 'S' and 'E' for the (open) start and end cells.
// Trailing blank lines and '\r' line endings are ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidTile (with position),
// ErrMissingStart, ErrMissingEnd or ErrDuplicateMarker on malformed input,
// or the reader's error wrapped.
// Complexity: O(W×H).
func ParseMaze(r io.Reader) (*Maze, error) {
	var (
		rows               [][]Tile
		start, end         Coordinates
		haveStart, haveEnd bool
	)
	sc := bufio.NewScanner(r)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]Tile, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case wallChar:
				row[x] = Wall
			case emptyChar:
				row[x] = Empty
			case startChar:
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at line %d, column %d", ErrDuplicateMarker, y+1, x+1)
				}
				start, haveStart = Pt(x, y), true
			case endChar:
				if haveEnd {
					return nil, fmt.Errorf("%w: second 'E' at line %d, column %d", ErrDuplicateMarker, y+1, x+1)
				}
				end, haveEnd = Pt(x, y), true
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidTile, line[x], y+1, x+1)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading maze: %w", err)
	}

	// drop trailing blank lines
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return &Maze{Grid: grid, Start: start, End: end}, nil
}

// ParseMazeString is ParseMaze over a string.
func ParseMazeString(s string) (*Maze, error) {
	return ParseMaze(strings.NewReader(s))
}

// Render draws g as maze text, one line per row, each line ending in '\n'.
// Cells present in overlay are drawn with the overlay character instead of
// their tile. Complexity: O(W×H).
func Render(g *Grid, overlay map[Coordinates]byte) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Pt(x, y)
			if ch, ok := overlay[c]; ok {
				sb.WriteByte(ch)
				continue
			}
			sb.WriteString(g.tiles[g.Index(c)].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders the maze with its 'S' and 'E' markers.
func (m *Maze) String() string {
	return Render(m.Grid, map[Coordinates]byte{m.Start: startChar, m.End: endChar})
}

// RenderMarked renders the maze with every cell in marked drawn as 'O';
// the 'S' and 'E' markers take precedence.
func (m *Maze) RenderMarked(marked []Coordinates) string {
	overlay := make(map[Coordinates]byte, len(marked)+2)
	for _, c := range marked {
		overlay[c] = markChar
	}
	overlay[m.Start] = startChar
	overlay[m.End] = endChar

	return Render(m.Grid, overlay)
}
