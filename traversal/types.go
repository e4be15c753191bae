// SPDX-License-Identifier: MIT

package traversal

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for engine initialisation and stepping.
var (
	// ErrGraphNil is returned when a nil graph is passed to New.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrInvalidNode is returned when the start or end vertex is absent from the graph.
	ErrInvalidNode = errors.New("traversal: invalid node")

	// ErrInvalidParameter is returned for an unknown algorithm or a bad depth limit.
	ErrInvalidParameter = errors.New("traversal: invalid parameter")

	// ErrInvalidState is returned when Advance is called on an engine that is not Running.
	ErrInvalidState = errors.New("traversal: invalid state")

	// ErrNeighbors is returned when fetching neighbours from the graph fails.
	ErrNeighbors = errors.New("traversal: neighbor iteration error")
)

// Graph is the read-only view of a graph the engine needs.
// NeighborIDs must return neighbours in a stable order; that order is the
// traversal tie-break. *core.Graph[K] satisfies this interface.
type Graph[K comparable] interface {
	HasVertex(id K) bool
	NeighborIDs(id K) ([]K, error)
}

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS uses a FIFO queue.
	BFS Algorithm = iota
	// DFS uses a LIFO stack.
	DFS
	// DLS uses a LIFO stack of (node, depth) entries and stops expanding at the depth limit.
	DLS
)

// String returns the short upper-case name ("BFS", "DFS", "DLS").
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case DLS:
		return "DLS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// valid reports whether a is one of the known algorithms.
func (a Algorithm) valid() bool {
	return a == BFS || a == DFS || a == DLS
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BFS":
		return BFS, nil
	case "DFS":
		return DFS, nil
	case "DLS":
		return DLS, nil
	}

	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, s)
}

// OpKind is the kind of frontier operation recorded in the log.
type OpKind int

const (
	// Enqueue adds a node to the back of the BFS queue.
	Enqueue OpKind = iota
	// Dequeue removes a node from the front of the BFS queue.
	Dequeue
	// Push adds a node to the top of the DFS/DLS stack.
	Push
	// Pop removes a node from the top of the DFS/DLS stack.
	Pop
)

// String returns the operation name as shown in the log table.
func (k OpKind) String() string {
	switch k {
	case Enqueue:
		return "Enqueue"
	case Dequeue:
		return "Dequeue"
	case Push:
		return "Push"
	case Pop:
		return "Pop"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Operation is one entry in the operation log.
// Depth is the node's distance from the start along its discovery path.
type Operation[K comparable] struct {
	Kind  OpKind
	Node  K
	Depth int
}

// IsDiscovery reports whether the operation added a node to the frontier.
func (o Operation[K]) IsDiscovery() bool { return o.Kind == Enqueue || o.Kind == Push }

// IsRemoval reports whether the operation took a node off the frontier.
func (o Operation[K]) IsRemoval() bool { return o.Kind == Dequeue || o.Kind == Pop }

// String renders the entry as "<Kind> <node>".
func (o Operation[K]) String() string {
	return fmt.Sprintf("%s %v", o.Kind, o.Node)
}

// RunState is the lifecycle stage of one traversal invocation.
type RunState int

const (
	// Idle is the zero value: no run has been initialised.
	Idle RunState = iota
	// Running accepts Advance calls.
	Running
	// Found means the end node was removed from the frontier.
	Found
	// Exhausted means the frontier emptied without reaching the end node.
	Exhausted
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Found:
		return "Found"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Terminal reports whether no further steps are possible.
func (s RunState) Terminal() bool { return s == Found || s == Exhausted }

// Link is a ParentMap value. HasParent is false only for the start node.
type Link[K comparable] struct {
	Parent    K
	HasParent bool
}

// ParentMap maps each discovered node to its predecessor.
type ParentMap[K comparable] map[K]Link[K]

// StepResult is the outcome of a single Advance call.
//
//   - Current: the node removed from the frontier (zero value when Exhausted).
//   - Ops: log entries appended by this step, in order.
//   - Done: no further steps are possible.
//   - Found: this step removed the end node; Path holds start → end.
type StepResult[K comparable] struct {
	Current K
	Ops     []Operation[K]
	Done    bool
	Found   bool
	Path    []K
}

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrInvalidParameter by New.
type Option func(*Options)

// Options holds the tunables applied by New.
type Options struct {
	// DepthLimit bounds DLS expansion. Ignored by BFS and DFS.
	DepthLimit int

	hasLimit bool
	err      error
}

// DefaultOptions returns Options with no depth limit set.
func DefaultOptions() Options {
	return Options{}
}

// WithDepthLimit sets the DLS depth limit.
//
//	d >= 0: nodes deeper than d are never pushed
//	d <  0: invalid option → ErrInvalidParameter
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrInvalidParameter, d)
			return
		}
		o.DepthLimit = d
		o.hasLimit = true
	}
}
