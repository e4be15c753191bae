// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/layout"
	"github.com/katalvlaran/pathfinder/traversal"
)

// ErrGraphNil is returned when DOT is called without a graph.
var ErrGraphNil = errors.New("export: graph is nil")

// Palette, as Graphviz colour names.
const (
	ColorUnvisited = "lightgrey"
	ColorExpanded  = "blue"
	ColorCurrent   = "green"
	ColorPath      = "red"
	pathPenWidth   = "3"
)

// Graph is the part of *core.Graph[K] the exporter reads.
type Graph[K comparable] interface {
	Vertices() []K
	Edges() []core.Edge[K]
}

// Snapshot is the traversal state to paint. *traversal.Engine[K] satisfies it.
type Snapshot[K comparable] interface {
	State() traversal.RunState
	Expanded() []K
	Frontier() []K
	Path() []K
}

// Option configures DOT.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	pos   layout.Positions[K]
	label string
}

// WithPositions pins every node that has a coordinate in pos.
func WithPositions[K comparable](pos layout.Positions[K]) Option[K] {
	return func(o *options[K]) { o.pos = pos }
}

// WithLabel sets the graph caption.
func WithLabel[K comparable](label string) Option[K] {
	return func(o *options[K]) { o.label = label }
}

// DOT renders g as an undirected DOT graph. snap may be nil (including a
// nil *traversal.Engine), in which case every node is drawn unvisited.
func DOT[K comparable](g Graph[K], snap Snapshot[K], opts ...Option[K]) (string, error) {
	if cg, ok := g.(*core.Graph[K]); g == nil || ok && cg == nil {
		return "", ErrGraphNil
	}
	if e, ok := snap.(*traversal.Engine[K]); ok && e == nil {
		snap = nil
	}
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	out := dot.NewGraph(dot.Undirected)
	if o.label != "" {
		out.Attr("label", o.label)
	}

	colors, dashed, onPath := paint(snap)

	nodes := make(map[K]dot.Node)
	for _, v := range g.Vertices() {
		id := fmt.Sprint(v)
		n := out.Node(id).Attr("style", "filled").Attr("fillcolor", ColorUnvisited)
		if c, ok := colors[v]; ok {
			n = n.Attr("fillcolor", c).Attr("fontcolor", "white")
		}
		if dashed[v] {
			n = n.Attr("style", "filled,dashed")
		}
		if p, ok := o.pos[v]; ok {
			n = n.Attr("pos", p.String()+"!")
		}
		nodes[v] = n
	}

	for _, e := range g.Edges() {
		edge := out.Edge(nodes[e.From], nodes[e.To])
		if onPath[[2]K{e.From, e.To}] || onPath[[2]K{e.To, e.From}] {
			edge.Attr("color", ColorPath).Attr("penwidth", pathPenWidth)
		}
	}

	return out.String(), nil
}

// paint derives per-node fill colours, dashed frontier nodes and the set of
// path edges from snap. Later layers win: expanded, then current, then path.
func paint[K comparable](snap Snapshot[K]) (map[K]string, map[K]bool, map[[2]K]bool) {
	colors := make(map[K]string)
	dashed := make(map[K]bool)
	onPath := make(map[[2]K]bool)
	if snap == nil {
		return colors, dashed, onPath
	}

	expanded := snap.Expanded()
	for _, v := range expanded {
		colors[v] = ColorExpanded
	}
	if snap.State() == traversal.Running && len(expanded) > 0 {
		colors[expanded[len(expanded)-1]] = ColorCurrent
	}
	for _, v := range snap.Frontier() {
		dashed[v] = true
	}
	path := snap.Path()
	for i, v := range path {
		colors[v] = ColorPath
		if i > 0 {
			onPath[[2]K{path[i-1], v}] = true
		}
	}
	return colors, dashed, onPath
}
