package sweep

import "fmt"

// Sweep runs a sweep cut on g under the given scores and ratio Mode.
//
// Algorithm: obtain the score-ascending ordering (Order), then grow the
// prefix set one vertex at a time for k = 1..n−1, updating the running
// aggregates incrementally and retaining the first k that achieves the
// minimal defined ratio. Prefixes whose ratio is undefined (zero
// denominator with non-zero numerator) are skipped.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. mode must be a declared Mode (ErrUnknownMode).
//  3. scores must cover every vertex with finite values
//     (ErrScoreCoverage, ErrScoreNotFinite).
//  4. no edge may carry a negative weight (ErrNegativeWeight) — detected
//     by an upfront O(V+E) scan, before any sweep work.
//
// Returns ErrNoValidSweep when no prefix admits a defined ratio (in
// particular for graphs with fewer than two vertices). Pure function of
// its inputs: neither g nor scores is mutated, and identical inputs yield
// identical results.
//
// Options customization:
//
//   - WithContext(ctx): cooperative cancellation, checked once per prefix.
//
// Complexity:
//
//   - Time:  O(V log V + V + E)
//   - Space: O(V)
func Sweep(g Graph, scores map[string]float64, mode Mode, opts ...Option) (*Result, error) {
	// 1) Build options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate graph and mode.
	if g == nil {
		return nil, ErrGraphNil
	}
	if mode != Conductance && mode != Bipartiteness {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}

	// 3) Validate scores and obtain the sweep ordering.
	order, err := Order(g, scores)
	if err != nil {
		return nil, err
	}

	// 4) Upfront weight scan: fail fast on negative weights, and collect
	//    the total volume needed by the conductance denominator.
	totalVolume, err := scanVolume(g)
	if err != nil {
		return nil, err
	}

	// 5) Incremental prefix scan over k = 1..n−1.
	n := len(order)
	ev := newEvaluator(g, mode, totalVolume, n)

	var (
		bestK     int
		bestRatio float64
		found     bool
	)
	for i := 0; i < n-1; i++ {
		// Cooperative cancellation between iterations only; an aggregate
		// update is never interrupted mid-flight.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if err = ev.add(order[i]); err != nil {
			return nil, err
		}

		ratio, ok := ev.ratio()
		if !ok {
			continue // undefined ratio: excluded from candidacy
		}
		// Strict < keeps the earliest k achieving the minimum.
		if !found || ratio < bestRatio {
			found = true
			bestRatio = ratio
			bestK = i + 1
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: n=%d", ErrNoValidSweep, n)
	}

	set := make([]string, bestK)
	copy(set, order[:bestK])

	return &Result{K: bestK, Set: set, Ratio: bestRatio}, nil
}

// scanVolume walks every vertex once, rejecting negative edge weights and
// returning the total graph volume Σ degree(v).
// Complexity: O(V + E).
func scanVolume(g Graph) (float64, error) {
	var total float64
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return 0, fmt.Errorf("sweep: degree(%q): %w", v, err)
		}
		total += deg

		var bad error
		err = g.ForEachNeighbor(v, func(to string, w float64) {
			if w < 0 && bad == nil {
				bad = fmt.Errorf("%w: edge %q—%q has weight %v", ErrNegativeWeight, v, to, w)
			}
		})
		if err != nil {
			return 0, fmt.Errorf("sweep: neighbors(%q): %w", v, err)
		}
		if bad != nil {
			return 0, bad
		}
	}

	return total, nil
}
