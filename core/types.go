package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for arena indexing.
var (
	// ErrNodeIndex indicates a NodeID that was not issued by this graph.
	ErrNodeIndex = errors.New("core: node index out of range")

	// ErrEdgeIndex indicates an EdgeID that was not issued by this graph.
	ErrEdgeIndex = errors.New("core: edge index out of range")
)

// NodeID is an opaque index into a Graph's node arena.
type NodeID int

// EdgeID is an opaque index into a Graph's edge arena.
type EdgeID int

const (
	// InvalidNode is never issued by AddNode.
	InvalidNode NodeID = -1

	// InvalidEdge is never issued by AddEdge.
	InvalidEdge EdgeID = -1
)

// IndexError is the panic value raised when a graph is indexed with an ID it
// never issued.
type IndexError struct {
	Kind  error // ErrNodeIndex or ErrEdgeIndex
	Index int   // offending index
	Len   int   // arena length at the time of access
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d (len %d)", e.Kind, e.Index, e.Len)
}

// Unwrap lets errors.Is match ErrNodeIndex / ErrEdgeIndex.
func (e *IndexError) Unwrap() error { return e.Kind }

// Options holds construction-time hints for a Graph.
type Options struct {
	NodeCapacity int // initial node arena capacity
	EdgeCapacity int // initial edge arena capacity
}

// Option configures a Graph before creation.
type Option func(*Options)

// WithCapacity pre-sizes the node and edge arenas. Negative values are treated as zero.
func WithCapacity(nodes, edges int) Option {
	return func(o *Options) {
		o.NodeCapacity = max(nodes, 0)
		o.EdgeCapacity = max(edges, 0)
	}
}

// node is the arena record for one node: payload plus incidence list.
type node[N any] struct {
	payload  N
	incident []EdgeID
}

// edge is the arena record for one undirected edge.
type edge[E any] struct {
	a, b    NodeID
	payload E
}

// Graph is an undirected multigraph over arena-allocated nodes and edges.
// The zero value is not usable; construct with NewGraph.
type Graph[N, E any] struct {
	nodes []node[N]
	edges []edge[E]
}
