package sweep

import (
	"fmt"
	"math"
)

// NormalizeScores rescales an eigenvector of the normalized Laplacian into
// sweep scores: each entry is divided by the square root of its vertex's
// degree (the D^{−1/2} transform that maps normalized-Laplacian
// eigenvectors onto the random-walk embedding the sweep orders by).
//
// Degree-zero vertices keep their score unchanged — dividing by zero would
// produce the non-finite values Order rejects, and an isolated vertex's
// position in the ordering is immaterial to every ratio anyway.
//
// The input map is not mutated; a fresh map is returned.
// Validation matches Order: nil graph, coverage, finiteness.
// Complexity: O(V + E) time (degree lookups), O(V) space.
func NormalizeScores(g Graph, scores map[string]float64) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	if err := validateScores(vertices, scores); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("sweep: degree(%q): %w", v, err)
		}
		if deg > 0 {
			out[v] = scores[v] / math.Sqrt(deg)
		} else {
			out[v] = scores[v]
		}
	}

	return out, nil
}
