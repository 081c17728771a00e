package maze

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/reindeer/core"
	"github.com/katalvlaran/reindeer/dijkstra"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// CellSet is a set of grid cells.
type CellSet map[gridgraph.Coordinates]struct{}

// Len returns the number of cells in s.
func (s CellSet) Len() int { return len(s) }

// Contains reports whether c is in s.
func (s CellSet) Contains(c gridgraph.Coordinates) bool {
	_, ok := s[c]

	return ok
}

// Sorted returns the cells in row-major order (by Y, then X).
func (s CellSet) Sorted() []gridgraph.Coordinates {
	out := maps.Keys(s)
	slices.SortFunc(out, func(a, b gridgraph.Coordinates) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// addSegment inserts every cell on the axis-aligned segment a..b, both ends included.
func (s CellSet) addSegment(a, b gridgraph.Coordinates) {
	switch {
	case a.X == b.X:
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			s[gridgraph.Pt(a.X, y)] = struct{}{}
		}
	case a.Y == b.Y:
		for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
			s[gridgraph.Pt(x, a.Y)] = struct{}{}
		}
	}
}

// ReconstructCells returns every grid cell lying on at least one minimal-cost
// route from the start to terminal.
//
// The tie sets recorded by Search are walked backward from terminal (see
// dijkstra.ResultSet.WalkTies). Each Move edge met contributes every cell of
// its straight segment; Turn edges contribute nothing beyond the terminal's
// own cell, which is always included when terminal is reachable.
//
// An unreachable terminal yields an empty set.
// Complexity: O(T + C) for T walked tie edges and C reported cells.
func (m *Map) ReconstructCells(rs *dijkstra.ResultSet, terminal core.NodeID) CellSet {
	cells := CellSet{}
	if !rs.Reachable(terminal) {
		return cells
	}
	cells[m.Graph.Node(terminal).At] = struct{}{}

	rs.WalkTies(terminal, func(a dijkstra.Arrival) {
		if m.Graph.Edge(a.Edge).Kind != Move {
			return
		}
		p, q := m.Graph.Endpoints(a.Edge)
		cells.addSegment(m.Graph.Node(p).At, m.Graph.Node(q).At)
	})

	return cells
}
