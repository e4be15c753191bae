// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - NeighborIDs() returns neighbours in edge insertion order.
// Concurrency:
//   - Holds muVert then muEdgeAdj read locks for a consistent snapshot.

package core

// NeighborIDs returns the vertices adjacent to id, in the order their edges
// were added. The returned slice is a copy.
//
// Implementation:
//   - Stage 1: Acquire muVert read lock and validate existence (ErrVertexNotFound).
//   - Stage 2: Acquire muEdgeAdj read lock and copy the adjacency bucket.
//
// Complexity: O(deg(v)) time and space.
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adj[id]
	out := make([]K, len(bucket))
	copy(out, bucket)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → neighbours map.
// Each slice is independent of the graph's internal storage.
// Complexity: O(V+E).
func (g *Graph[K]) AdjacencyList() map[K][]K {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[K][]K, len(g.order))
	for _, id := range g.order {
		bucket := g.adj[id]
		cp := make([]K, len(bucket))
		copy(cp, bucket)
		out[id] = cp
	}

	return out
}
