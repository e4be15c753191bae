// Package traversal implements breadth-first, depth-first and depth-limited
// search as a step-resumable state machine, built for animation drivers that
// advance the search one expansion per clock tick.
//
// What
//
//   - New(g, start, end, algo, opts...) validates inputs and returns a Running
//     Engine seeded with start.
//   - Engine.Advance() performs exactly one expansion and returns control:
//     remove one frontier entry, stop if it is the goal, otherwise discover
//     its unvisited neighbours.
//   - Every frontier operation (Enqueue/Dequeue for BFS, Push/Pop for DFS and
//     DLS) is appended to an operation log the driver can render.
//   - Parent links are recorded on discovery; ReconstructPath turns them into
//     the start → end path when the goal is found.
//
// Why
//
//	Splitting a search into pull-based steps decouples algorithmic correctness
//	from timing. The engine never loops, blocks or sleeps inside Advance; the
//	caller alone decides the cadence, and results are identical whether steps
//	run back-to-back or seconds apart.
//
// Determinism
//
//	Neighbours are discovered in the order Graph.NeighborIDs returns them.
//	For core.Graph that is edge insertion order, so identical graphs always
//	produce identical logs.
//
// Depth-limited search
//
//	Depth is carried per frontier entry. A node is marked visited when first
//	discovered and is never rediscovered, even if a shorter route to it turns
//	up later; its first-discovered depth is the only one explored. DLS can
//	therefore miss a goal that lies within the limit along a different route.
//
// Lifecycle
//
//	Idle → Running → Found | Exhausted. Advance on a non-Running engine fails
//	with ErrInvalidState and changes nothing. To run again, call New; there is
//	no partial reset. Abandoning an engine needs no cleanup.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Whole run: O(V + E) time, O(V) memory (+ O(V) log entries).
//   - One Advance: O(deg(current)).
//
// Errors
//
//   - ErrGraphNil          nil graph.
//   - ErrInvalidNode       start or end not in the graph.
//   - ErrInvalidParameter  unknown algorithm, negative depth limit, DLS without a limit.
//   - ErrInvalidState      Advance after Found or Exhausted.
//   - ErrNeighbors         the graph failed to list a node's neighbours.
package traversal
