// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Each AddEdge appends to both endpoint buckets, so NeighborIDs reflects
//     edge insertion order.

package core

// AddEdge inserts the undirected edge {from, to}, creating missing endpoints.
//
// Steps:
//  1. Reject self-loops (ErrLoopNotAllowed).
//  2. Ensure both vertices exist (AddVertex is idempotent).
//  3. Under muEdgeAdj, reject a parallel edge in either orientation
//     (ErrMultiEdgeNotAllowed).
//  4. Append to the edge catalog and to both adjacency buckets.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) error {
	if from == to {
		return ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.hasEdgeLocked(from, to) {
		return ErrMultiEdgeNotAllowed
	}

	g.pairs[[2]K{from, to}] = len(g.edges)
	g.edges = append(g.edges, Edge[K]{From: from, To: to})
	g.adj[from] = append(g.adj[from], to)
	g.adj[to] = append(g.adj[to], from)

	return nil
}

// HasEdge reports whether an edge joins from and to, in either orientation.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge[K], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph[K]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// hasEdgeLocked must be called with muEdgeAdj held.
func (g *Graph[K]) hasEdgeLocked(from, to K) bool {
	if _, ok := g.pairs[[2]K{from, to}]; ok {
		return true
	}
	_, ok := g.pairs[[2]K{to, from}]

	return ok
}
