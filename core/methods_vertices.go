// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register it.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap an empty adjacency bucket.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.index[id]; exists {
		return nil // no-op for existing vertex
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
func (g *Graph[K]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// Degree returns the number of neighbours of id.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph[K]) Degree(id K) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.index[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adj[id]), nil
}
