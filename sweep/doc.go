// Package sweep implements spectral sweep cuts over weighted undirected
// graphs: given a real-valued score per vertex (typically an eigenvector
// coordinate of a Laplacian-derived matrix), it orders the vertices by
// score, evaluates every prefix of that ordering under a quality ratio,
// and returns the prefix achieving the minimum.
//
// Two ratios are supported:
//
//   - Conductance (the Cheeger sweep): cut(S) / min(vol(S), vol(V)−vol(S)),
//     which finds sparsely-connected vertex sets.
//   - Bipartiteness (the Cheeger–Trevisan sweep): 2·internal(S) / vol(S),
//     which finds near-bipartite vertex sets. A two-sided variant,
//     TwoSidedSweep, additionally splits the chosen set into its two
//     near-bipartite sides.
//
// The ratio for each prefix is maintained incrementally: adding a vertex v
// to the prefix updates the running volume, cut weight and internal weight
// in O(deg(v)), so a full sweep costs O(V+E) aggregate work instead of the
// O(V·E) a per-prefix recomputation would take.
//
// Inputs are consumed through the minimal Graph capability set (vertex
// iteration, degree lookup, weighted-neighbor iteration); *core.Graph and
// gonumgraph.Graph both satisfy it. Neither the graph nor the score vector
// is ever mutated, so independent sweeps may share them concurrently.
//
// Complexity:
//
//   - Time:  O(V log V) ordering + O(V + E) sweep.
//   - Space: O(V) for the ordering and membership set.
//
// Determinism:
//
//   - The ordering is a stable sort over Graph.Vertices(); equal scores
//     resolve by the graph's fixed vertex order, so identical inputs always
//     produce identical results.
package sweep
