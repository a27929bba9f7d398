package sweep

import (
	"fmt"
	"math"
)

// evaluator maintains the running aggregates of a growing prefix set S:
//
//	volume   = Σ degree(v) over v ∈ S
//	cut      = Σ weight of edges with exactly one endpoint in S
//	internal = Σ weight of edges with both endpoints in S
//	          (self-loops counted once, with their natural weight)
//
// add moves the prefix from S to S ∪ {v} in O(deg(v)); a naive per-prefix
// recomputation would cost O(E) each, O(V·E) over the whole sweep.
type evaluator struct {
	g           Graph
	mode        Mode
	totalVolume float64

	inSet    map[string]bool
	volume   float64
	cut      float64
	internal float64
}

func newEvaluator(g Graph, mode Mode, totalVolume float64, n int) *evaluator {
	return &evaluator{
		g:           g,
		mode:        mode,
		totalVolume: totalVolume,
		inSet:       make(map[string]bool, n),
	}
}

// add absorbs vertex v into the prefix set, updating all aggregates.
//
// Cut update: an edge from v to a vertex already in S stops crossing the
// boundary (−w); an edge to a vertex not yet in S starts crossing (+w).
// Self-loops never cross, so they only affect internal weight and (via
// Degree) volume.
func (e *evaluator) add(v string) error {
	deg, err := e.g.Degree(v)
	if err != nil {
		return fmt.Errorf("sweep: degree(%q): %w", v, err)
	}
	e.volume += deg

	err = e.g.ForEachNeighbor(v, func(to string, w float64) {
		if to == v {
			// Self-loop: internal by definition, never part of the cut.
			e.internal += w

			return
		}
		if e.inSet[to] {
			e.cut -= w
			e.internal += w
		} else {
			e.cut += w
		}
	})
	if err != nil {
		return fmt.Errorf("sweep: neighbors(%q): %w", v, err)
	}

	e.inSet[v] = true

	return nil
}

// ratio returns the current prefix's ratio under the evaluator's Mode,
// and whether the ratio is defined.
//
// Degenerate-denominator policy (both modes): a zero denominator with a
// zero numerator is a trivially perfect cut (ratio 0); a zero denominator
// with a non-zero numerator is undefined and the prefix is skipped.
func (e *evaluator) ratio() (float64, bool) {
	switch e.mode {
	case Conductance:
		denom := math.Min(e.volume, e.totalVolume-e.volume)
		if denom == 0 {
			if e.cut == 0 {
				return 0, true
			}

			return 0, false
		}

		return e.cut / denom, true

	case Bipartiteness:
		if e.volume == 0 {
			if e.internal == 0 {
				return 0, true
			}

			return 0, false
		}

		return 2 * e.internal / e.volume, true

	default:
		return 0, false
	}
}
