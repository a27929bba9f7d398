// Package gonumgraph adapts gonum.org/v1/gonum graphs to the capability
// set consumed by lvlcut's sweep package, so a graph assembled with gonum
// (for example while computing Laplacian eigenvectors with gonum/mat) can
// be swept directly, without copying it into a core.Graph first.
//
// The adapter is a thin read-only view: it holds the wrapped
// graph.WeightedUndirected and translates between gonum's int64 node IDs
// and the sweep package's string vertex IDs (decimal rendering). The
// deterministic vertex order — the sweep's tie-break key — is numeric node
// ID ascending.
//
// Gonum's simple undirected graphs carry no self-loops or parallel edges,
// so the wrapped view never produces them; the Laplacian degree convention
// therefore reduces to the plain incident-weight sum.
package gonumgraph
