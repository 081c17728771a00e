// Package core provides the arena-backed graph that every other package in
// reindeer builds on.
//
// A Graph[N, E] is an undirected multigraph whose nodes and edges live in two
// append-only arenas. Callers never hold pointers into the graph; they hold
// opaque NodeID and EdgeID indices and ask the graph for payloads, endpoints
// and incidence lists.
//
// Why arenas?
//
//   - No cyclic ownership: edges reference nodes by index, never by pointer.
//   - Deterministic iteration: nodes and edges are visited in insertion order.
//   - Cheap per-search bookkeeping: algorithms can key maps or slices by index.
//
// Core Methods:
//
//	AddNode(payload N) NodeID                 // O(1) amortized
//	AddEdge(a, b NodeID, payload E) EdgeID    // O(1) amortized
//	Node(id) N, Edge(id) E                    // O(1)
//	Endpoints(id) (NodeID, NodeID)            // O(1)
//	Opposite(edge, node) NodeID               // O(1)
//	Incident(id) []EdgeID                     // O(1), insertion order
//	NodeCount(), EdgeCount()                  // O(1)
//
// Errors:
//
// Indexing with an ID that the graph never issued is a programming defect,
// not a runtime condition, so the accessors panic with an *IndexError that
// wraps ErrNodeIndex or ErrEdgeIndex. HasNode and HasEdge are the non-panicking
// probes.
//
// Concurrency:
//
// A Graph is not safe for concurrent mutation. Once built, it may be shared
// read-only between goroutines.
package core
