package maze

import (
	"fmt"

	"github.com/katalvlaran/reindeer/core"
	"github.com/katalvlaran/reindeer/dijkstra"
)

// Search runs the tie-tracking search from m.Start over the whole map and
// returns a fresh ResultSet. It never fails on a Map produced by Build; opts
// only attach observation hooks.
// Complexity: O(E log E).
func (m *Map) Search(opts ...dijkstra.Option) *dijkstra.ResultSet {
	rs, err := dijkstra.Search(m.Graph, m.Start, m.Weight, opts...)
	if err != nil {
		// Build only emits non-negative weights, so this is a corrupted Map.
		panic(fmt.Sprintf("maze: search on compiled map: %v", err))
	}

	return rs
}

// Cost returns the minimal cost recorded for node, or false if node is unreachable.
func (m *Map) Cost(rs *dijkstra.ResultSet, node core.NodeID) (int64, bool) {
	return rs.Cost(node)
}

// CheapestTerminal returns whichever end node is cheaper and its cost.
// On an exact tie the Vertical node is returned. It reports false when the
// end is unreachable.
func (m *Map) CheapestTerminal(rs *dijkstra.ResultSet) (core.NodeID, int64, bool) {
	h, okH := rs.Cost(m.End[0])
	v, okV := rs.Cost(m.End[1])
	if !okH || !okV {
		return core.InvalidNode, 0, false
	}
	if h < v {
		return m.End[0], h, true
	}

	return m.End[1], v, true
}
