package maze

import (
	"fmt"

	"github.com/katalvlaran/reindeer/gridgraph"
)

// Solve compiles the maze, searches it and reconstructs the optimal cells of
// the cheapest terminal.
//
// Returns Build's errors unchanged, or ErrUnreachable (wrapped with the
// coordinates) when start and end are not connected.
// Complexity: O(W×H + E log E).
func Solve(grid *gridgraph.Grid, start, end gridgraph.Coordinates, opts ...Option) (*Solution, error) {
	m, err := Build(grid, start, end, opts...)
	if err != nil {
		return nil, err
	}
	if !grid.Connected(start, end) {
		return nil, fmt.Errorf("%w: %v → %v", ErrUnreachable, start, end)
	}

	rs := m.Search()
	terminal, cost, ok := m.CheapestTerminal(rs)
	if !ok {
		return nil, fmt.Errorf("%w: %v → %v", ErrUnreachable, start, end)
	}

	return &Solution{
		Map:      m,
		Terminal: terminal,
		Cost:     cost,
		Cells:    m.ReconstructCells(rs, terminal),
	}, nil
}

// SolveMaze is Solve on a parsed maze.
func SolveMaze(mz *gridgraph.Maze, opts ...Option) (*Solution, error) {
	if mz == nil {
		return nil, ErrNilGrid
	}

	return Solve(mz.Grid, mz.Start, mz.End, opts...)
}
