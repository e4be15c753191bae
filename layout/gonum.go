// SPDX-License-Identifier: MIT

package layout

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

// ordered presents a Graph[K] to gonum as an undirected graph whose node
// IDs are vertex indexes. Node and neighbour iteration follow Vertices()
// order, which keeps gonum's seeded placement reproducible.
type ordered[K comparable] struct {
	nodes []graph.Node
	adj   [][]graph.Node
	edge  [][]bool
}

var _ graph.Graph = (*ordered[string])(nil)

func newOrdered[K comparable](g Graph[K], vs []K) *ordered[K] {
	n := len(vs)
	o := &ordered[K]{
		nodes: make([]graph.Node, n),
		adj:   make([][]graph.Node, n),
		edge:  make([][]bool, n),
	}
	for i := range vs {
		o.nodes[i] = simple.Node(i)
		o.edge[i] = make([]bool, n)
	}
	for i := range vs {
		for j := range vs {
			if i != j && g.HasEdge(vs[i], vs[j]) {
				o.edge[i][j] = true
				o.adj[i] = append(o.adj[i], o.nodes[j])
			}
		}
	}
	return o
}

func (o *ordered[K]) valid(id int64) bool { return id >= 0 && id < int64(len(o.nodes)) }

// Node implements graph.Graph.
func (o *ordered[K]) Node(id int64) graph.Node {
	if !o.valid(id) {
		return nil
	}
	return o.nodes[id]
}

// Nodes implements graph.Graph.
func (o *ordered[K]) Nodes() graph.Nodes { return iterator.NewOrderedNodes(o.nodes) }

// From implements graph.Graph.
func (o *ordered[K]) From(id int64) graph.Nodes {
	if !o.valid(id) {
		return iterator.NewOrderedNodes(nil)
	}
	return iterator.NewOrderedNodes(o.adj[id])
}

// HasEdgeBetween implements graph.Graph.
func (o *ordered[K]) HasEdgeBetween(xid, yid int64) bool {
	return o.valid(xid) && o.valid(yid) && o.edge[xid][yid]
}

// Edge implements graph.Graph.
func (o *ordered[K]) Edge(uid, vid int64) graph.Edge {
	if !o.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: o.nodes[uid], T: o.nodes[vid]}
}
