// Package pathfinder watches graph search happen one step at a time.
//
// 🚀 What is pathfinder?
//
//	A small toolkit that runs BFS, DFS and depth-limited search as
//	pull-based state machines and shows every queue/stack operation:
//		• Core primitives: an undirected, unweighted, insertion-ordered Graph
//		• Builders: G(n,p) random graphs, paths, cycles, stars, grids, edge lists
//		• Traversal: a step-resumable engine with an operation log and parent map
//		• Animation: a rate-limited driver, side-by-side comparison, metrics
//		• Rendering: spring layout, Graphviz DOT snapshots, a terminal UI
//
// ✨ Why step-resumable?
//
//   - The engine never sleeps; the caller picks the cadence
//   - The same run replays identically at any speed
//   - Any renderer can paint the state between two steps
//
// Under the hood:
//
//	core/      — Graph[K] with stable neighbour order
//	builder/   — deterministic graph constructors
//	traversal/ — Engine, Advance, ReconstructPath
//	animate/   — Driver and Compare
//	layout/    — Circular, Spring, Scale, click hit-testing
//	export/    — DOT rendering of a traversal snapshot
//	config/    — YAML settings with live reload
//	metrics/   — Prometheus counters for steps and runs
//	tui/       — Bubble Tea front-end
//	cmd/pathfinder — the CLI
//
// Quick ASCII example, BFS from A to D:
//
//	    A───B
//	    │   │
//	    C───D
//
//	Dequeue A · Enqueue B · Enqueue C
//	Dequeue B · Enqueue D
//	Dequeue C
//	Dequeue D → Found: A → B → D
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
