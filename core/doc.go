// Package core defines the central Graph type used across lvlcut:
// an undirected multigraph with non-negative float64 edge weights and
// optional self-loops, guarded by a sync.RWMutex so independent readers
// (for example, concurrent sweeps over the same graph) never contend
// with each other.
//
// Design contract:
//
//   - Weights are real-valued and never negative (ErrNegativeWeight).
//   - Degree follows the Laplacian convention: a self-loop contributes
//     twice its weight to the degree of its vertex.
//   - Every iteration order is deterministic: Vertices() sorts IDs
//     lexicographically ascending, ForEachNeighbor visits neighbor IDs in
//     the same order. Algorithms downstream rely on this for reproducible
//     tie-breaking.
//   - The query surface (Vertices, Degree, ForEachNeighbor) is exactly the
//     capability set consumed by the sweep package, so *core.Graph plugs
//     into sweep.Graph directly.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrNegativeWeight      - negative weight passed to AddEdge.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
