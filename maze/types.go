package maze

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/reindeer/core"
	"github.com/katalvlaran/reindeer/gridgraph"
)

// Sentinel errors for maze operations.
var (
	// ErrNilGrid indicates Build received a nil grid.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrOutOfBounds indicates a start or end coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinates out of bounds")

	// ErrStartBlocked indicates the start coordinate is a wall.
	ErrStartBlocked = errors.New("maze: start is a wall")

	// ErrEndBlocked indicates the end coordinate is a wall.
	ErrEndBlocked = errors.New("maze: end is a wall")

	// ErrBadTurnCost indicates a non-positive turn cost.
	ErrBadTurnCost = errors.New("maze: turn cost must be positive")

	// ErrUnreachable indicates no route connects start and end.
	ErrUnreachable = errors.New("maze: unable to find a path")
)

// DefaultTurnCost is the cost of rotating between the horizontal and vertical axis.
const DefaultTurnCost int64 = 1000

// Node is a position in the maze together with the axis the mover faces.
// Horizontal and Vertical are its two variants.
type Node struct {
	Orientation gridgraph.Orientation
	At          gridgraph.Coordinates
}

// Horizontal returns the node for facing along the x axis at c.
func Horizontal(c gridgraph.Coordinates) Node {
	return Node{Orientation: gridgraph.Horizontal, At: c}
}

// Vertical returns the node for facing along the y axis at c.
func Vertical(c gridgraph.Coordinates) Node {
	return Node{Orientation: gridgraph.Vertical, At: c}
}

// String formats n as "(x,y) -" or "(x,y) |".
func (n Node) String() string {
	return fmt.Sprintf("%v %v", n.At, n.Orientation)
}

// EdgeKind distinguishes rotations from straight moves.
type EdgeKind uint8

const (
	// Turn joins the two orientation nodes of one coordinate.
	Turn EdgeKind = iota
	// Move joins same-orientation nodes along an unobstructed straight run.
	Move
)

// Edge is the payload of a Map graph edge. Distance is zero for a Turn.
type Edge struct {
	Kind     EdgeKind
	Distance int
}

// TurnEdge returns a Turn edge payload.
func TurnEdge() Edge { return Edge{Kind: Turn} }

// MoveEdge returns a Move edge payload spanning distance cells.
func MoveEdge(distance int) Edge { return Edge{Kind: Move, Distance: distance} }

// Cost returns the edge's weight given the turn cost.
func (e Edge) Cost(turnCost int64) int64 {
	if e.Kind == Turn {
		return turnCost
	}

	return int64(e.Distance)
}

// String returns "Turn" or the move distance.
func (e Edge) String() string {
	if e.Kind == Turn {
		return "Turn"
	}

	return strconv.Itoa(e.Distance)
}

// Map is a compiled maze: the decision-point graph plus its distinguished nodes.
//
// Start is the start coordinate's Horizontal node. End holds the end
// coordinate's Horizontal and Vertical nodes, in that order; either is a
// valid place to finish.
type Map struct {
	Graph    *core.Graph[Node, Edge]
	Start    core.NodeID
	End      [2]core.NodeID
	TurnCost int64

	// coordinate → (horizontal, vertical) node pair
	nodes map[gridgraph.Coordinates][2]core.NodeID
}

// NodesAt returns the Horizontal and Vertical nodes at c, if c is a decision point.
func (m *Map) NodesAt(c gridgraph.Coordinates) (h, v core.NodeID, ok bool) {
	pair, ok := m.nodes[c]
	if !ok {
		return core.InvalidNode, core.InvalidNode, false
	}

	return pair[0], pair[1], true
}

// Weight is the edge weight function the search uses.
func (m *Map) Weight(e Edge) int64 { return e.Cost(m.TurnCost) }

// Options configures Build.
type Options struct {
	// TurnCost is the weight of every Turn edge. Must be > 0.
	TurnCost int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Options with TurnCost = DefaultTurnCost.
func DefaultOptions() Options {
	return Options{TurnCost: DefaultTurnCost}
}

// WithTurnCost overrides the Turn edge weight.
//
//	cost > 0:  used as is
//	cost <= 0: invalid option → ErrBadTurnCost from Build
func WithTurnCost(cost int64) Option {
	return func(o *Options) {
		if cost <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadTurnCost, cost)
			return
		}
		o.TurnCost = cost
	}
}

// Solution is the outcome of Solve.
type Solution struct {
	// Map is the compiled maze the solution refers to.
	Map *Map
	// Terminal is the end node the cells were reconstructed from.
	Terminal core.NodeID
	// Cost is the minimal score from start to end.
	Cost int64
	// Cells holds every cell on at least one optimal route to Terminal.
	Cells CellSet
}
