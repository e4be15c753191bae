// Package export renders a graph and the state of a traversal as Graphviz
// DOT text.
//
// Colours follow the animation palette: unvisited nodes are light grey,
// expanded nodes blue, the node removed by the latest step green, and the
// found path red. Path edges are drawn red with penwidth 3. Nodes still
// waiting in the frontier get a dashed outline.
//
// Pass layout positions with WithPositions to pin nodes (pos="x,y!") for
// neato/fdp rendering.
package export
