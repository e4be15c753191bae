// SPDX-License-Identifier: MIT

package traversal

// Read-only views for drivers that render incrementally. Every slice or map
// returned here is a copy; mutating it does not affect the engine.

// State returns the current RunState.
func (e *Engine[K]) State() RunState { return e.state }

// Algorithm returns the frontier discipline of this run.
func (e *Engine[K]) Algorithm() Algorithm { return e.algo }

// Start returns the start node.
func (e *Engine[K]) Start() K { return e.start }

// End returns the goal node.
func (e *Engine[K]) End() K { return e.end }

// DepthLimit returns the configured depth limit (meaningful for DLS only).
func (e *Engine[K]) DepthLimit() int { return e.depthLimit }

// Steps returns how many successful Advance calls have been made.
func (e *Engine[K]) Steps() int { return e.steps }

// Log returns the operation log so far.
func (e *Engine[K]) Log() []Operation[K] {
	out := make([]Operation[K], len(e.log))
	copy(out, e.log)
	return out
}

// Visited returns the visited set in discovery order.
func (e *Engine[K]) Visited() []K {
	out := make([]K, len(e.order))
	copy(out, e.order)
	return out
}

// IsVisited reports whether id has been discovered.
func (e *Engine[K]) IsVisited(id K) bool {
	_, ok := e.visited[id]
	return ok
}

// Expanded returns the nodes removed from the frontier, in removal order.
// These are the nodes a renderer paints as visited.
func (e *Engine[K]) Expanded() []K {
	out := make([]K, len(e.expanded))
	copy(out, e.expanded)
	return out
}

// Frontier returns the pending nodes in removal order: front of the queue
// first for BFS, top of the stack first for DFS/DLS.
func (e *Engine[K]) Frontier() []K {
	n := len(e.frontier)
	out := make([]K, n)
	for i, it := range e.frontier {
		if e.algo == BFS {
			out[i] = it.node
		} else {
			out[n-1-i] = it.node
		}
	}
	return out
}

// Parents returns a snapshot of the parent map.
func (e *Engine[K]) Parents() ParentMap[K] {
	out := make(ParentMap[K], len(e.parents))
	for k, v := range e.parents {
		out[k] = v
	}
	return out
}

// Path returns the reconstructed start → end path once the run is Found,
// and nil otherwise.
func (e *Engine[K]) Path() []K {
	if e.state != Found {
		return nil
	}
	out := make([]K, len(e.path))
	copy(out, e.path)
	return out
}
