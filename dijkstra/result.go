package dijkstra

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/reindeer/core"
)

// ResultSet is the immutable outcome of one Search: the root plus an entry
// for every node reached from it. It is never modified after Search returns.
type ResultSet struct {
	root  core.NodeID
	store map[core.NodeID]*Entry
}

// Root returns the node the search started from.
func (rs *ResultSet) Root() core.NodeID { return rs.root }

// Len returns the number of reached nodes, root included.
func (rs *ResultSet) Len() int { return len(rs.store) }

// Reachable reports whether node was reached.
func (rs *ResultSet) Reachable(node core.NodeID) bool {
	_, ok := rs.store[node]

	return ok
}

// Cost returns the minimum cost from the root to node, or false if node was
// never reached. The root costs 0.
func (rs *ResultSet) Cost(node core.NodeID) (int64, bool) {
	e, ok := rs.store[node]
	if !ok {
		return 0, false
	}

	return e.Cost, true
}

// EdgesTo returns the tie set of node: every (predecessor, edge) arrival that
// achieves node's minimum cost. It is empty for the root and for unreached
// nodes. The returned slice must not be modified.
func (rs *ResultSet) EdgesTo(node core.NodeID) []Arrival {
	if e, ok := rs.store[node]; ok {
		return e.Ties
	}

	return nil
}

// Entry returns a copy of node's entry, or false if node was never reached.
func (rs *ResultSet) Entry(node core.NodeID) (Entry, bool) {
	e, ok := rs.store[node]
	if !ok {
		return Entry{}, false
	}

	return Entry{Root: e.Root, Cost: e.Cost, Ties: slices.Clone(e.Ties)}, true
}

// Nodes returns every reached node in ascending index order.
// Complexity: O(V log V).
func (rs *ResultSet) Nodes() []core.NodeID {
	ids := maps.Keys(rs.store)
	slices.Sort(ids)

	return ids
}

// WalkTies visits every edge lying on at least one minimum-cost path from the
// root to terminal, calling fn once per edge with the arrival that reached it.
//
// The walk is an explicit-stack depth-first traversal backward over tie sets:
// pop an arrival, skip it if its edge was already seen, otherwise mark the edge,
// report it and push the tie set of the arrival's source. Marking edges rather
// than nodes lets a node be re-entered through distinct tie edges while still
// terminating on cyclic tie structures (zero-weight edges).
//
// An unreached terminal or the root yields no calls.
// Complexity: O(T) where T is the total size of the visited tie sets.
func (rs *ResultSet) WalkTies(terminal core.NodeID, fn func(Arrival)) {
	seen := make(map[core.EdgeID]struct{})
	stack := slices.Clone(rs.EdgesTo(terminal))
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[a.Edge]; ok {
			continue
		}
		seen[a.Edge] = struct{}{}
		fn(a)
		stack = append(stack, rs.EdgesTo(a.From)...)
	}
}
