// Package dijkstra implements a tie-tracking variant of Dijkstra's algorithm
// on arena graphs.
//
// Unlike the textbook search, which settles each node once with a single
// predecessor, this variant keeps every incoming edge that achieves a node's
// minimum cost. The resulting ResultSet therefore describes *all* optimal
// paths from the root, not just one of them.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Heap entries are arrivals (source, destination, edge, cost), not nodes.
//   - We use a "lazy" deletion strategy: duplicates stay in the heap and are
//     classified against the recorded cost when popped.
//   - Only accepted arrivals relax outgoing edges; ties are recorded but not expanded.
//   - The heap always drains completely: there is no target and no early exit.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/reindeer/core"
)

// Search explores g from root and returns, for every reachable node, its
// minimum cost and tie set. weight maps an edge payload to its non-negative cost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. weight must be non-nil (ErrNilWeight).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// root must be a node of g; an invalid root is a programming error and panics
// with a *core.IndexError.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
func Search[N, E any](g *core.Graph[N, E], root core.NodeID, weight func(E) int64, opts ...Option) (*ResultSet, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if weight == nil {
		return nil, ErrNilWeight
	}
	_ = g.Incident(root) // panics on an invalid root

	// 3) Pre-scan weights once so the main loop can trust them.
	costs := make([]int64, g.EdgeCount())
	for _, e := range g.Edges() {
		w := weight(g.Edge(e))
		if w < 0 {
			a, b := g.Endpoints(e)
			return nil, fmt.Errorf("%w: edge %d (%d—%d) weight=%d", ErrNegativeWeight, e, a, b, w)
		}
		costs[e] = w
	}

	r := &runner[N, E]{
		g:       g,
		options: cfg,
		costs:   costs,
		visited: make(map[core.NodeID]*Entry, g.NodeCount()),
		pq:      make(arrivalPQ, 0, g.EdgeCount()),
	}
	r.init(root)
	r.process()

	return &ResultSet{root: root, store: r.visited}, nil
}

// runner holds the mutable state for a single search execution.
type runner[N, E any] struct {
	g       *core.Graph[N, E]      // input graph; read-only here
	options Options                // hooks
	costs   []int64                // pre-scanned edge weights, indexed by EdgeID
	visited map[core.NodeID]*Entry // node → best cost and tie set so far
	pq      arrivalPQ              // min-heap of pending arrivals
}

// init records the root and queues its incident edges.
func (r *runner[N, E]) init(root core.NodeID) {
	r.visited[root] = &Entry{Root: true}
	heap.Init(&r.pq)
	r.relax(root, 0)
}

// process pops arrivals until the heap is empty. Each arrival is classified
// against the destination's recorded cost; only accepted arrivals relax.
func (r *runner[N, E]) process() {
	for r.pq.Len() > 0 {
		a := heap.Pop(&r.pq).(*arrival)

		switch r.visit(a) {
		case accepted:
			r.options.OnAccept(a.to, a.cost)
			r.relax(a.to, a.cost)
		case tied:
			r.options.OnTie(a.to, a.cost)
		case discarded:
			r.options.OnDiscard(a.to, a.cost)
		}
	}
}

// visit folds one arrival into the visited set.
//
//   - unvisited destination      → new entry with tie set {edge}; accepted.
//   - strictly cheaper           → cost replaced, tie set reset to {edge}; accepted.
//   - equal cost                 → edge appended to the tie set; tied.
//   - more expensive, or root    → dropped; discarded.
func (r *runner[N, E]) visit(a *arrival) outcome {
	in := Arrival{From: a.from, Edge: a.edge}
	entry, ok := r.visited[a.to]
	switch {
	case !ok:
		r.visited[a.to] = &Entry{Cost: a.cost, Ties: []Arrival{in}}
		return accepted
	case entry.Root:
		return discarded
	case a.cost < entry.Cost:
		entry.Cost = a.cost
		entry.Ties = append(entry.Ties[:0], in)
		return accepted
	case a.cost == entry.Cost:
		entry.Ties = append(entry.Ties, in)
		return tied
	default:
		return discarded
	}
}

// relax queues every edge incident to u with cost = base + weight.
func (r *runner[N, E]) relax(u core.NodeID, base int64) {
	for _, e := range r.g.Incident(u) {
		heap.Push(&r.pq, &arrival{
			from: u,
			to:   r.g.Opposite(e, u),
			edge: e,
			cost: base + r.costs[e],
		})
	}
}

// arrival is a pending traversal of edge from → to with accumulated cost.
type arrival struct {
	from core.NodeID
	to   core.NodeID
	edge core.EdgeID
	cost int64
}

// arrivalPQ is a min-heap of *arrival ordered by cost ascending. Order among
// equal costs is irrelevant: every equal-cost arrival ends up in a tie set.
type arrivalPQ []*arrival

// Len returns the number of items in the heap.
func (pq arrivalPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq arrivalPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq arrivalPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *arrival.
func (pq *arrivalPQ) Push(x interface{}) { *pq = append(*pq, x.(*arrival)) }

// Pop removes and returns the smallest element from the heap.
func (pq *arrivalPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
