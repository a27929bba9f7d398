// SPDX-License-Identifier: MIT
//
// impl_barbell.go — Barbell(clique, bridge) constructor.
//
// Contract:
//   - clique ≥ 2, bridge ≥ 0; total n = 2·clique + bridge vertices.
//   - Layout (indices, IDs via cfg.idFn):
//     left clique 0..clique−1,
//     bridge path clique..clique+bridge−1,
//     right clique clique+bridge..2·clique+bridge−1.
//   - Edge (clique−1, clique) chains the left clique into the bridge and
//     the bridge into the right clique at (clique+bridge−1, clique+bridge);
//     with bridge=0 the two cliques connect directly — the reference
//     barbell layout from the spectral-bisection literature.
//   - Weight: cfg.weight on every edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcut/core"
)

const (
	methodBarbell    = "Barbell"
	minBarbellClique = 2
	minBarbellBridge = 0
)

// Barbell returns a Constructor that builds a barbell graph: two cliques
// K_clique joined by a path of bridge vertices. The thin bridge is the
// sparsest cut, which makes the barbell the canonical conductance-sweep
// fixture.
func Barbell(clique, bridge int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if clique < minBarbellClique {
			return fmt.Errorf("%s: clique=%d < min=%d: %w", methodBarbell, clique, minBarbellClique, ErrTooFewVertices)
		}
		if bridge < minBarbellBridge {
			return fmt.Errorf("%s: bridge=%d < min=%d: %w", methodBarbell, bridge, minBarbellBridge, ErrTooFewVertices)
		}

		// Left and right cliques.
		if err := emitClique(g, cfg, methodBarbell, 0, clique); err != nil {
			return err
		}
		if err := emitClique(g, cfg, methodBarbell, clique+bridge, clique); err != nil {
			return err
		}

		// Bridge path vertices.
		for i := 0; i < bridge; i++ {
			if err := g.AddVertex(cfg.idFn(clique + i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBarbell, cfg.idFn(clique+i), err)
			}
		}

		// Chain: left clique → bridge → right clique. The loop emits every
		// consecutive pair from index clique−1 through clique+bridge.
		for i := clique - 1; i < clique+bridge; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodBarbell, u, v, err)
			}
		}

		return nil
	}
}
