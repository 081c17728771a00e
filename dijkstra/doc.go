// Package dijkstra provides a tie-tracking implementation of Dijkstra's
// shortest-path algorithm on core.Graph arenas with non-negative edge weights.
//
// Overview:
//
//   - Search computes, for every node reachable from a root, the minimum cost
//     and the tie set: every incoming edge that achieves that cost.
//   - It relies on a min-heap of arrivals (source, destination, edge, cost) and
//     lazy deletion: stale arrivals are classified and dropped when popped.
//   - The heap always drains. Exhaustive propagation is what makes the tie sets
//     complete for every node, including all orientations of a goal.
//
// When to use:
//
//   - When you need the union of all optimal paths, not a single one
//     (e.g. "which cells lie on any best route through this maze").
//   - When a node may be reached by several equally cheap routes and each must be kept.
//
// Arrival classification (per popped arrival at node v with cost c):
//
//   - v unvisited:       record c with tie set {edge}; accepted, relax v.
//   - c < recorded:      replace cost, reset tie set to {edge}; accepted, relax v.
//   - c == recorded:     append edge to tie set; not relaxed again.
//   - c > recorded:      discard.
//
// Performance and complexity:
//
//   - Time:  O(E log E); each accepted node pushes all its incident edges.
//   - Space: O(V + E).
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       Search received a nil graph.
//   - ErrNilWeight:      Search received a nil weight function.
//   - ErrNegativeWeight: an edge weighed less than zero (detected by a fast O(E) pre-scan).
//
// An invalid root index is a programming error and panics (see core.IndexError).
//
// Reconstruction:
//
//	rs, _ := dijkstra.Search(g, root, weight)
//	rs.WalkTies(goal, func(a dijkstra.Arrival) {
//	    // a.Edge lies on some optimal root→goal path
//	})
//
// Determinism:
//
//   - For a fixed graph, repeated searches produce identical costs and tie sets.
//
// Thread safety:
//
//   - Search reads the graph only. A ResultSet is immutable and may be shared.
package dijkstra
