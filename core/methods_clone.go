// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: vertices, edges and adjacency,
// with insertion order preserved.
// Complexity: O(V+E).
func (g *Graph[K]) Clone() *Graph[K] {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph[K]()
	clone.order = make([]K, len(g.order))
	copy(clone.order, g.order)
	for id, i := range g.index {
		clone.index[id] = i
	}
	clone.edges = make([]Edge[K], len(g.edges))
	copy(clone.edges, g.edges)
	for p, i := range g.pairs {
		clone.pairs[p] = i
	}
	for id, bucket := range g.adj {
		cp := make([]K, len(bucket))
		copy(cp, bucket)
		clone.adj[id] = cp
	}

	return clone
}

// Clear removes all vertices and edges.
// Complexity: O(1) (old storage is released to the GC).
func (g *Graph[K]) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.order = nil
	g.index = make(map[K]int)
	g.edges = nil
	g.adj = make(map[K][]K)
	g.pairs = make(map[[2]K]int)
}
