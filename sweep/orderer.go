package sweep

import (
	"fmt"
	"math"
	"sort"
)

// Order produces the sweep ordering: every vertex of g sorted by ascending
// score. Vertices with equal scores keep their relative position from
// g.Vertices(), so repeated runs on the same input yield the same
// permutation.
//
// Validation (before any sorting):
//  1. g must be non-nil (ErrGraphNil).
//  2. scores must cover every vertex exactly once (ErrScoreCoverage).
//  3. every score must be a finite real (ErrScoreNotFinite).
//
// Complexity: O(V log V) time, O(V) space.
func Order(g Graph, scores map[string]float64) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	if err := validateScores(vertices, scores); err != nil {
		return nil, err
	}

	// Copy before sorting; the ordering must not alias the graph's slice.
	order := make([]string, len(vertices))
	copy(order, vertices)

	// Stable sort keeps the graph's deterministic vertex order as the
	// tie-break key for equal scores.
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] < scores[order[j]]
	})

	return order, nil
}

// validateScores checks that scores maps every vertex in vertices to a
// finite value, with no surplus entries.
func validateScores(vertices []string, scores map[string]float64) error {
	if len(scores) != len(vertices) {
		return fmt.Errorf("%w: %d vertices, %d scores", ErrScoreCoverage, len(vertices), len(scores))
	}
	for _, id := range vertices {
		s, ok := scores[id]
		if !ok {
			return fmt.Errorf("%w: no score for vertex %q", ErrScoreCoverage, id)
		}
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("%w: vertex %q has score %v", ErrScoreNotFinite, id, s)
		}
	}

	return nil
}
