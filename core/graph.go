// File: graph.go
// Role: Arena lifecycle and read-only queries for Graph[N, E].
// Determinism:
//   - Node and edge IDs are issued densely from 0 in insertion order.
//   - Incident() lists edges in the order they were attached.

package core

// NewGraph creates an empty Graph.
// Complexity: O(NodeCapacity + EdgeCapacity) for pre-sizing, O(1) otherwise.
func NewGraph[N, E any](opts ...Option) *Graph[N, E] {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, E]{
		nodes: make([]node[N], 0, cfg.NodeCapacity),
		edges: make([]edge[E], 0, cfg.EdgeCapacity),
	}
}

// AddNode appends a node carrying payload and returns its index.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(payload N) NodeID {
	g.nodes = append(g.nodes, node[N]{payload: payload})

	return NodeID(len(g.nodes) - 1)
}

// AddEdge appends an undirected edge a—b carrying payload and returns its index.
// Parallel edges are allowed. A self-loop is recorded once in a's incidence list.
// Panics if either endpoint is invalid.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(a, b NodeID, payload E) EdgeID {
	g.mustNode(a)
	g.mustNode(b)

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge[E]{a: a, b: b, payload: payload})
	g.nodes[a].incident = append(g.nodes[a].incident, id)
	if a != b {
		g.nodes[b].incident = append(g.nodes[b].incident, id)
	}

	return id
}

// HasNode reports whether id was issued by this graph.
func (g *Graph[N, E]) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// HasEdge reports whether id was issued by this graph.
func (g *Graph[N, E]) HasEdge(id EdgeID) bool {
	return id >= 0 && int(id) < len(g.edges)
}

// Node returns the payload of node id. Panics on an invalid index.
func (g *Graph[N, E]) Node(id NodeID) N {
	g.mustNode(id)

	return g.nodes[id].payload
}

// Edge returns the payload of edge id. Panics on an invalid index.
func (g *Graph[N, E]) Edge(id EdgeID) E {
	g.mustEdge(id)

	return g.edges[id].payload
}

// Endpoints returns the two nodes joined by edge id, in the order they were
// passed to AddEdge. Panics on an invalid index.
func (g *Graph[N, E]) Endpoints(id EdgeID) (NodeID, NodeID) {
	g.mustEdge(id)
	e := g.edges[id]

	return e.a, e.b
}

// Opposite returns the endpoint of edge id that is not from. For a self-loop
// it returns from. Panics if id is invalid or from is not an endpoint of id.
func (g *Graph[N, E]) Opposite(id EdgeID, from NodeID) NodeID {
	g.mustEdge(id)
	e := g.edges[id]
	switch from {
	case e.a:
		return e.b
	case e.b:
		return e.a
	}
	panic(&IndexError{Kind: ErrNodeIndex, Index: int(from), Len: len(g.nodes)})
}

// Incident returns the edges attached to node id in insertion order.
// The returned slice is owned by the graph and must not be modified.
// Panics on an invalid index.
func (g *Graph[N, E]) Incident(id NodeID) []EdgeID {
	g.mustNode(id)

	return g.nodes[id].incident
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the arena.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// Nodes returns every NodeID in index order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range ids {
		ids[i] = NodeID(i)
	}

	return ids
}

// Edges returns every EdgeID in index order.
// Complexity: O(E).
func (g *Graph[N, E]) Edges() []EdgeID {
	ids := make([]EdgeID, len(g.edges))
	for i := range ids {
		ids[i] = EdgeID(i)
	}

	return ids
}

func (g *Graph[N, E]) mustNode(id NodeID) {
	if !g.HasNode(id) {
		panic(&IndexError{Kind: ErrNodeIndex, Index: int(id), Len: len(g.nodes)})
	}
}

func (g *Graph[N, E]) mustEdge(id EdgeID) {
	if !g.HasEdge(id) {
		panic(&IndexError{Kind: ErrEdgeIndex, Index: int(id), Len: len(g.edges)})
	}
}
