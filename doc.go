// Package lvlcut finds sparse and near-bipartite vertex sets in weighted
// graphs using spectral sweep cuts.
//
// 🚀 What is lvlcut?
//
//	A small, thread-safe library that brings together:
//		• Core primitives: a float64-weighted undirected multigraph with loops
//		• Cheeger sweep: the classic conductance sweep cut over a score ordering
//		• Cheeger–Trevisan sweep: the bipartiteness analogue, one- and two-sided
//		• Builders: deterministic cycle/complete/bipartite/barbell fixtures
//		• Adapters: sweep any gonum.org/v1/gonum weighted undirected graph
//
// ✨ Why choose lvlcut?
//
//   - Scores in, cuts out – bring your own eigenvector, lvlcut does the sweep
//   - Rock-solid guarantees – deterministic orderings, sentinel errors, no panics
//   - Incremental by design – O(V+E) per sweep, never O(V·E) recomputation
//   - Extensible – any graph exposing the three-method capability set sweeps
//
// Everything is organized under four subpackages:
//
//	core/       — fundamental Graph type & thread-safe read primitives
//	sweep/      — score ordering, ratio evaluators, sweep drivers
//	builder/    — deterministic graph constructors for tests and demos
//	gonumgraph/ — adapter from gonum graphs to the sweep capability set
//
// Quick ASCII example:
//
//	    0───1     4───5
//	    │ ╳ │──3──│ ╳ │
//	    2───┘     └───6
//
//	two dense blobs joined by a thin bridge — the sweep finds the bridge.
//
// Dive into the examples/ directory for annotated, runnable scenarios.
//
//	go get github.com/katalvlaran/lvlcut
package lvlcut
