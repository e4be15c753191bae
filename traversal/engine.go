// SPDX-License-Identifier: MIT

package traversal

import (
	"context"
	"fmt"
)

// entry is one frontier slot. depth is tracked per entry, not per node.
type entry[K comparable] struct {
	node  K
	depth int
}

// Engine is the step-resumable traversal state for one run.
// It is not safe for concurrent use; independent runs use independent engines.
type Engine[K comparable] struct {
	graph      Graph[K]
	algo       Algorithm
	start, end K
	depthLimit int

	state    RunState
	frontier []entry[K]
	visited  map[K]struct{}
	order    []K // discovery order, mirrors visited
	expanded []K // nodes removed from the frontier, in removal order
	parents  ParentMap[K]
	log      []Operation[K]
	path     []K
	steps    int
}

// New validates its inputs and returns a Running engine whose frontier and
// visited set hold only start, with ParentMap[start] = none.
//
// Errors (nothing is allocated on failure):
//   - ErrGraphNil          g is nil.
//   - ErrInvalidParameter  unknown algorithm, negative depth limit, or DLS without a limit.
//   - ErrInvalidNode       start or end is not a vertex of g.
func New[K comparable](g Graph[K], start, end K, algo Algorithm, opts ...Option) (*Engine[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !algo.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidParameter, algo)
	}
	if algo == DLS && !o.hasLimit {
		return nil, fmt.Errorf("%w: DLS requires a depth limit", ErrInvalidParameter)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v not in graph", ErrInvalidNode, start)
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %v not in graph", ErrInvalidNode, end)
	}

	e := &Engine[K]{
		graph:      g,
		algo:       algo,
		start:      start,
		end:        end,
		depthLimit: o.DepthLimit,
		state:      Running,
		visited:    make(map[K]struct{}),
		parents:    make(ParentMap[K]),
	}
	e.frontier = append(e.frontier, entry[K]{node: start})
	e.visited[start] = struct{}{}
	e.order = append(e.order, start)
	e.parents[start] = Link[K]{}

	return e, nil
}

// Advance performs exactly one expansion:
//
//  1. empty frontier → Exhausted, {Done: true}
//  2. remove one entry (front for BFS, back for DFS/DLS) and log Dequeue/Pop
//  3. removed node == end → Found, {Done: true, Found: true, Path}
//  4. otherwise discover every unvisited neighbour in adjacency order
//     (DLS only while depth+1 <= limit), logging Enqueue/Push
//
// Advance returns ErrInvalidState unless the engine is Running. Neighbours
// are fetched before anything is mutated, so a lookup failure (wrapped in
// ErrNeighbors) leaves the engine exactly as it was.
func (e *Engine[K]) Advance() (StepResult[K], error) {
	var res StepResult[K]
	if e.state != Running {
		return res, fmt.Errorf("%w: engine is %s", ErrInvalidState, e.state)
	}

	if len(e.frontier) == 0 {
		e.steps++
		e.state = Exhausted
		res.Done = true
		return res, nil
	}

	cur := e.peek()
	var neighbors []K
	if cur.node != e.end && e.expandable(cur) {
		var err error
		if neighbors, err = e.graph.NeighborIDs(cur.node); err != nil {
			return res, fmt.Errorf("%w: neighbors of %v: %v", ErrNeighbors, cur.node, err)
		}
	}

	e.steps++
	mark := len(e.log)
	e.remove()
	e.expanded = append(e.expanded, cur.node)
	res.Current = cur.node

	if cur.node == e.end {
		e.state = Found
		e.path = ReconstructPath(e.parents, e.end)
		res.Ops = e.freshOps(mark)
		res.Done, res.Found, res.Path = true, true, e.Path()
		return res, nil
	}

	for _, nbr := range neighbors {
		if _, seen := e.visited[nbr]; seen {
			continue
		}
		e.discover(nbr, cur)
	}
	res.Ops = e.freshOps(mark)

	return res, nil
}

// expandable reports whether cur's neighbours may enter the frontier.
// Only DLS restricts expansion.
func (e *Engine[K]) expandable(cur entry[K]) bool {
	return e.algo != DLS || cur.depth+1 <= e.depthLimit
}

// peek returns the entry remove would take, without mutating.
func (e *Engine[K]) peek() entry[K] {
	if e.algo == BFS {
		return e.frontier[0]
	}
	return e.frontier[len(e.frontier)-1]
}

// remove takes the next entry per discipline and logs its removal.
func (e *Engine[K]) remove() entry[K] {
	it := e.peek()
	kind := Pop
	if e.algo == BFS {
		e.frontier = e.frontier[1:]
		kind = Dequeue
	} else {
		e.frontier = e.frontier[:len(e.frontier)-1]
	}
	e.log = append(e.log, Operation[K]{Kind: kind, Node: it.node, Depth: it.depth})

	return it
}

// discover inserts nbr into the frontier one level below parent.
func (e *Engine[K]) discover(nbr K, parent entry[K]) {
	d := parent.depth + 1
	e.frontier = append(e.frontier, entry[K]{node: nbr, depth: d})
	e.visited[nbr] = struct{}{}
	e.order = append(e.order, nbr)
	e.parents[nbr] = Link[K]{Parent: parent.node, HasParent: true}

	kind := Push
	if e.algo == BFS {
		kind = Enqueue
	}
	e.log = append(e.log, Operation[K]{Kind: kind, Node: nbr, Depth: d})
}

// freshOps copies the log tail appended since mark.
func (e *Engine[K]) freshOps(mark int) []Operation[K] {
	out := make([]Operation[K], len(e.log)-mark)
	copy(out, e.log[mark:])
	return out
}

// Run drains the engine synchronously, calling Advance back-to-back until
// it reports Done, fails, or ctx is cancelled (checked once per step).
// It returns the final step's result.
func Run[K comparable](ctx context.Context, e *Engine[K]) (StepResult[K], error) {
	for {
		select {
		case <-ctx.Done():
			return StepResult[K]{}, ctx.Err()
		default:
		}

		res, err := e.Advance()
		if err != nil || res.Done {
			return res, err
		}
	}
}
