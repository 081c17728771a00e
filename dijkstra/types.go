// Package dijkstra defines core types and configuration options
// for the tie-tracking Dijkstra search on arena graphs.
//
// The search computes, for every node reachable from a single root, the
// minimum cost and the full set of incoming edges ("tie set") that achieve
// that cost. Edge weights must be non-negative.
//
// Complexity:
//
//	– Time:  O(E log E)
//	   • Every accepted arrival pushes all incident edges of its node.
//	   • Stale entries are not removed from the heap; they are pruned when popped.
//	– Space: O(V + E)
//	   • O(V) entries in the result set, each with a tie list.
//	   • O(E) entries in the priority queue in the worst case (lazy deletion).
//
// Options:
//
//	– OnAccept:  called when a node receives a new, strictly smaller cost.
//	– OnTie:     called when an arrival matches a node's recorded cost.
//	– OnDiscard: called when a popped arrival is more expensive than the recorded cost.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNilWeight      if the weight function is nil.
//	– ErrNegativeWeight if a negative edge weight is detected in the graph.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/reindeer/core"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates that no weight function was supplied.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the observable behavior of Search.
//
// OnAccept  – node reached with a new minimum cost (first arrival or strictly cheaper).
// OnTie     – node reached again at exactly its recorded cost; the edge joins the tie set.
// OnDiscard – node reached at a higher cost than recorded; the arrival is dropped.
//
// Hooks observe; they cannot alter the search.
type Options struct {
	OnAccept  func(node core.NodeID, cost int64)
	OnTie     func(node core.NodeID, cost int64)
	OnDiscard func(node core.NodeID, cost int64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithOnAccept registers a callback for accepted arrivals. A nil fn is ignored.
func WithOnAccept(fn func(node core.NodeID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAccept = fn
		}
	}
}

// WithOnTie registers a callback for tied arrivals. A nil fn is ignored.
func WithOnTie(fn func(node core.NodeID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTie = fn
		}
	}
}

// WithOnDiscard registers a callback for discarded arrivals. A nil fn is ignored.
func WithOnDiscard(fn func(node core.NodeID, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscard = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnAccept:  func(core.NodeID, int64) {},
		OnTie:     func(core.NodeID, int64) {},
		OnDiscard: func(core.NodeID, int64) {},
	}
}

// Arrival is one incoming edge in a tie set: the node it came from and the
// edge it travelled along.
type Arrival struct {
	From core.NodeID
	Edge core.EdgeID
}

// Entry is the search result for one node.
//
// The root has Root == true, Cost == 0 and no ties. Every other reached node
// has at least one tie, all of which realise Cost.
type Entry struct {
	Root bool
	Cost int64
	Ties []Arrival
}

// visit outcomes for a single popped arrival.
type outcome uint8

const (
	accepted outcome = iota
	tied
	discarded
)
