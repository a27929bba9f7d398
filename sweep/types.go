package sweep

// Graph is the minimal read-only capability set the sweep algorithms
// require from a graph representation. Any adjacency structure satisfying
// these three methods can be swept; *core.Graph and gonumgraph.Graph are
// the in-repo implementations.
//
// Contract:
//   - Vertices returns every vertex ID in a fixed deterministic order;
//     that order is the stable tie-break key for equal scores.
//   - Degree returns the weighted degree of id, with self-loops counting
//     twice their weight (Laplacian convention). Weights are ≥ 0.
//   - ForEachNeighbor calls visit once per incident edge with the opposite
//     endpoint and the edge weight; parallel edges yield one call each and
//     a self-loop yields a single call with to == id.
type Graph interface {
	Vertices() []string
	Degree(id string) (float64, error)
	ForEachNeighbor(id string, visit func(to string, weight float64)) error
}

// Mode selects the ratio definition a sweep minimizes.
type Mode uint8

const (
	// Conductance sweeps for a sparse cut: cut(S) / min(vol(S), vol(V)−vol(S)).
	Conductance Mode = iota

	// Bipartiteness sweeps for a near-bipartite set: 2·internal(S) / vol(S).
	Bipartiteness
)

// String implements fmt.Stringer for diagnostics and test names.
func (m Mode) String() string {
	switch m {
	case Conductance:
		return "conductance"
	case Bipartiteness:
		return "bipartiteness"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a one-sided sweep:
//   - K: the chosen prefix length, 1 ≤ K ≤ n−1.
//   - Set: the chosen vertex set, in sweep (score-ascending) order.
//   - Ratio: the minimal ratio achieved, under the requested Mode.
//
// A Result is immutable once returned; Set does not alias internal state.
type Result struct {
	K     int
	Set   []string
	Ratio float64
}

// TwoSidedResult holds the outcome of the two-sided Cheeger–Trevisan sweep:
// the vertices of the chosen set split into its two near-bipartite sides,
// each in sweep (score-magnitude-descending) order, plus the bipartiteness
// ratio achieved. Edges between Left and Right are the "good" bipartite
// edges; edges inside either side contribute to the ratio's numerator.
type TwoSidedResult struct {
	Left  []string
	Right []string
	Ratio float64
}
