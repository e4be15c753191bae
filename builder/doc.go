// Package builder constructs core.Graph[string] fixtures and random graphs
// for the traversal engine and its drivers.
//
// The package offers the following key components:
//
//   - BuildGraph(bopts, cons...): the single orchestrator. Creates a graph,
//     resolves options, applies constructors in order.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG and the vertex ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – SymbolIDFn:      single letters ("A","B",…).
//     – ExcelColumnIDFn: Excel-style columns ("A","Z","AA",…).
//   - Topologies:
//     – RandomSparse(n,p):            Erdős–Rényi G(n,p).
//     – RandomSparseRange(n0,n1,p0,p1): draws n and p first, then G(n,p).
//     – Path, Cycle, Star, Complete, Grid.
//     – EdgeList("A-B,B-C"):          explicit edges, in the given order.
//
// Determinism
//
//	Vertices are added in index order and edges are emitted in a fixed,
//	documented order, so adjacency order (and therefore traversal order) is
//	reproducible. Stochastic constructors draw only from the configured RNG;
//	the same WithSeed value always yields the same graph.
//
// Errors
//
//	Constructors never panic; they return sentinel errors wrapped with the
//	method name ("RandomSparse: p=1.2 not in [0.0,1.0]: builder: probability
//	out of range"). Option constructors panic on nil arguments.
package builder
