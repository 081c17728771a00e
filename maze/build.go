package maze

import (
	"fmt"

	"github.com/katalvlaran/reindeer/core"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// Build compiles grid into a Map with start and end as its distinguished cells.
//
// Behavior:
//  1. Validate options, grid, and that start and end are open cells.
//  2. Row pass: scan each row left to right. Every decision point gets a
//     Horizontal and a Vertical node joined by a Turn edge; consecutive
//     decision points with no wall between them are joined by a Move edge
//     between their Horizontal nodes, weighted by the x distance.
//  3. Column pass: scan each column top to bottom, joining consecutive
//     decision points' Vertical nodes the same way.
//
// A decision point with no straight-line partner in an axis simply has no
// Move edge in that axis. A corridor without interior decision points
// collapses into a single Move edge.
//
// Complexity: O(W×H) time, O(D) memory for D decision points.
func Build(grid *gridgraph.Grid, start, end gridgraph.Coordinates, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := checkCell(grid, start, ErrStartBlocked); err != nil {
		return nil, fmt.Errorf("start %v: %w", start, err)
	}
	if err := checkCell(grid, end, ErrEndBlocked); err != nil {
		return nil, fmt.Errorf("end %v: %w", end, err)
	}

	b := &builder{
		grid:  grid,
		start: start,
		end:   end,
		m: &Map{
			Graph:    core.NewGraph[Node, Edge](),
			Start:    core.InvalidNode,
			End:      [2]core.NodeID{core.InvalidNode, core.InvalidNode},
			TurnCost: cfg.TurnCost,
			nodes:    make(map[gridgraph.Coordinates][2]core.NodeID),
		},
	}
	b.scanRows()
	b.scanColumns()

	return b.m, nil
}

func checkCell(g *gridgraph.Grid, c gridgraph.Coordinates, blocked error) error {
	tile, ok := g.At(c)
	if !ok {
		return ErrOutOfBounds
	}
	if tile == gridgraph.Wall {
		return blocked
	}

	return nil
}

// builder carries the state of one Build call.
type builder struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Coordinates
	m          *Map
}

// isDecisionPoint reports whether the open cell c becomes a pair of nodes.
func (b *builder) isDecisionPoint(c gridgraph.Coordinates) bool {
	if c == b.start || c == b.end {
		return true
	}
	open := b.grid.OpenNeighbors(c) // Left, Right, Up, Down
	horizontal := open[0] || open[1]
	vertical := open[2] || open[3]
	count := 0
	for _, ok := range open {
		if ok {
			count++
		}
	}

	return (horizontal && vertical) || count == 1
}

// addDecisionPoint allocates the node pair at c, links it with a Turn edge and
// records the start and end nodes.
func (b *builder) addDecisionPoint(c gridgraph.Coordinates) (h, v core.NodeID) {
	g := b.m.Graph
	h = g.AddNode(Horizontal(c))
	v = g.AddNode(Vertical(c))
	g.AddEdge(h, v, TurnEdge())
	b.m.nodes[c] = [2]core.NodeID{h, v}

	if c == b.start {
		b.m.Start = h
	}
	if c == b.end {
		b.m.End = [2]core.NodeID{h, v}
	}

	return h, v
}

// scanRows creates every node pair and the horizontal Move edges.
func (b *builder) scanRows() {
	for y := 0; y < b.grid.Height; y++ {
		prev, prevX := core.InvalidNode, 0
		for x := 0; x < b.grid.Width; x++ {
			c := gridgraph.Pt(x, y)
			if !b.grid.IsOpen(c) {
				prev = core.InvalidNode
				continue
			}
			if !b.isDecisionPoint(c) {
				continue
			}

			h, _ := b.addDecisionPoint(c)
			if prev != core.InvalidNode {
				b.m.Graph.AddEdge(prev, h, MoveEdge(x-prevX))
			}
			prev, prevX = h, x
		}
	}
}

// scanColumns adds the vertical Move edges between existing node pairs.
func (b *builder) scanColumns() {
	for x := 0; x < b.grid.Width; x++ {
		prev, prevY := core.InvalidNode, 0
		for y := 0; y < b.grid.Height; y++ {
			c := gridgraph.Pt(x, y)
			if !b.grid.IsOpen(c) {
				prev = core.InvalidNode
				continue
			}
			pair, ok := b.m.nodes[c]
			if !ok {
				continue
			}

			v := pair[1]
			if prev != core.InvalidNode {
				b.m.Graph.AddEdge(prev, v, MoveEdge(y-prevY))
			}
			prev, prevY = v, y
		}
	}
}
