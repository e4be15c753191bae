// Package core provides the thread-safe, in-memory graph the traversal
// engine runs over: undirected, unweighted and simple.
//
// The Graph G = (V,E) is generic over its vertex identifier K, which may be
// any comparable type (string labels from the builder, ints, small structs).
//
// What
//
//   - Vertices and undirected edges, no weights.
//   - Simple graphs only: AddEdge(v,v) → ErrLoopNotAllowed,
//     a second AddEdge(u,v) or AddEdge(v,u) → ErrMultiEdgeNotAllowed.
//   - AddEdge auto-creates missing endpoints.
//   - Separate sync.RWMutex for the vertex catalog (muVert) and for
//     edges+adjacency (muEdgeAdj), always acquired in that order.
//
// Determinism
//
//	Vertices() returns IDs in insertion order and NeighborIDs(v) returns
//	neighbours in the order their edges were added. This is the graph's
//	native adjacency ordering; traversal tie-breaks follow it, so identical
//	construction sequences always yield identical traversals.
//
// Core Methods
//
//	NewGraph[K]() *Graph[K]                       // O(1)
//	AddVertex(id K) error                         // O(1), idempotent
//	HasVertex(id K) bool                          // O(1)
//	AddEdge(from, to K) error                     // O(1) amortized
//	HasEdge(from, to K) bool                      // O(1)
//	NeighborIDs(id K) ([]K, error)                // O(deg(v)), copy
//	Vertices() []K, Edges() []Edge[K]             // O(V), O(E)
//	VertexCount(), EdgeCount(), Degree(id)        // O(1)
//	Clone() *Graph[K], Clear()                    // O(V+E), O(1)
//
// Errors
//
//   - ErrVertexNotFound      the requested vertex does not exist.
//   - ErrLoopNotAllowed      AddEdge(v, v).
//   - ErrMultiEdgeNotAllowed a parallel edge between the same endpoints.
package core
