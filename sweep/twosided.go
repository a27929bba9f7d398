package sweep

import (
	"fmt"
	"math"
	"sort"
)

// TwoSidedSweep runs the two-sided Cheeger–Trevisan sweep: vertices are
// ordered by descending score magnitude, each is assigned to the left side
// (score < 0) or the right side (score ≥ 0) as it joins the growing set
// S = L ∪ R, and every prefix is evaluated under the bipartiteness ratio
//
//	β(L,R) = (2·w(L,L) + 2·w(R,R) + w(S, V∖S)) / min(vol(S), vol(V)−vol(S))
//
// whose numerator charges every edge violating the bipartition — edges
// inside either side twice, edges leaving S once — while edges between L
// and R cost nothing. A self-loop is an edge inside one side and is
// charged 2·w. The split with the minimal defined ratio is returned.
//
// Validation and degenerate-denominator policy match Sweep; the numerator
// is maintained incrementally in O(deg(v)) per added vertex.
//
// Returns ErrNoValidSweep when no prefix admits a defined ratio.
//
// Complexity: O(V log V + V + E) time, O(V) space.
func TwoSidedSweep(g Graph, scores map[string]float64, opts ...Option) (*TwoSidedResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	if err := validateScores(vertices, scores); err != nil {
		return nil, err
	}

	// Order by descending |score|; ties keep the graph's stable vertex order.
	order := make([]string, len(vertices))
	copy(order, vertices)
	sort.SliceStable(order, func(i, j int) bool {
		return math.Abs(scores[order[i]]) > math.Abs(scores[order[j]])
	})

	totalVolume, err := scanVolume(g)
	if err != nil {
		return nil, err
	}

	const (
		left  int8 = -1
		right int8 = +1
	)

	n := len(order)
	side := make(map[string]int8, n)

	var (
		leftSet, rightSet  []string
		volume, numerator  float64
		bestLeft, bestRght int
		bestRatio          float64
		found              bool
	)
	for i := 0; i < n-1; i++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v := order[i]
		s := right
		if scores[v] < 0 {
			s = left
		}

		deg, derr := g.Degree(v)
		if derr != nil {
			return nil, fmt.Errorf("sweep: degree(%q): %w", v, derr)
		}
		volume += deg

		// Numerator update for v joining side s:
		//   edge to a vertex outside S        → newly leaving S:  +w
		//   edge to a vertex on the same side → cut edge becomes a
		//     same-side edge: w → 2w, net     +w
		//   edge to the opposite side         → cut edge becomes a good
		//     bipartite edge: w → 0, net      −w
		//   self-loop                         → same-side edge:   +2w
		err = g.ForEachNeighbor(v, func(to string, w float64) {
			switch {
			case to == v:
				numerator += 2 * w
			case side[to] == 0:
				numerator += w
			case side[to] == s:
				numerator += w
			default:
				numerator -= w
			}
		})
		if err != nil {
			return nil, fmt.Errorf("sweep: neighbors(%q): %w", v, err)
		}

		side[v] = s
		if s == left {
			leftSet = append(leftSet, v)
		} else {
			rightSet = append(rightSet, v)
		}

		denom := math.Min(volume, totalVolume-volume)
		var ratio float64
		switch {
		case denom == 0 && numerator == 0:
			ratio = 0
		case denom == 0:
			continue // undefined: excluded from candidacy
		default:
			ratio = numerator / denom
		}

		if !found || ratio < bestRatio {
			found = true
			bestRatio = ratio
			bestLeft, bestRght = len(leftSet), len(rightSet)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: n=%d", ErrNoValidSweep, n)
	}

	// leftSet/rightSet are append-only, so prefix lengths identify the
	// best split; copy so the result does not alias the working slices.
	res := &TwoSidedResult{
		Left:  make([]string, bestLeft),
		Right: make([]string, bestRght),
		Ratio: bestRatio,
	}
	copy(res.Left, leftSet[:bestLeft])
	copy(res.Right, rightSet[:bestRght])

	return res, nil
}
