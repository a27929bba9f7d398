// SPDX-License-Identifier: MIT
//
// Package builder provides deterministic constructors for the standard
// graph topologies used throughout lvlcut's tests, benchmarks and examples:
// cycles, paths, cliques, complete bipartite graphs, stars and barbells.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates the
//     graph, resolves the builder configuration, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig; no global state.
//   - Determinism: same inputs, options and constructor order produce
//     byte-identical graphs (vertex IDs via the configured IDFn, edges
//     emitted in a fixed documented order, constant per-edge weight).
//   - Safety: constructors never panic at runtime; they return sentinel
//     errors. Option constructors panic on meaningless values, surfacing
//     programmer error at the call site.
package builder
