// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// From and To record the orientation the edge was added with; it has no
// meaning for traversal.
type Edge[K comparable] struct {
	From K
	To   K
}

// Graph is an undirected, unweighted, simple graph over vertex IDs of type K.
//
// muVert protects order and index; muEdgeAdj protects edges and adjacency.
// Lock order is muVert -> muEdgeAdj everywhere both are held.
type Graph[K comparable] struct {
	muVert    sync.RWMutex // guards order, index
	muEdgeAdj sync.RWMutex // guards edges, adjacency

	order []K          // vertices in insertion order
	index map[K]int    // vertex ID → position in order
	edges []Edge[K]    // edges in insertion order
	adj   map[K][]K    // vertex ID → neighbours in edge insertion order
	pairs map[[2]K]int // canonical (from,to) as added → edge index, for HasEdge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		index: make(map[K]int),
		adj:   make(map[K][]K),
		pairs: make(map[[2]K]int),
	}
}
