// SPDX-License-Identifier: MIT
//
// impl_cycle.go — Cycle(n) and Path(n) constructors.
//
// Contract:
//   - Cycle: n ≥ 3; vertices 0..n−1 via cfg.idFn; edges i → (i+1) mod n
//     emitted in ascending i.
//   - Path: n ≥ 2; vertices 0..n−1 via cfg.idFn; edges i → i+1 in
//     ascending i.
//   - Weight: cfg.weight on every edge.
//   - Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcut/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, cfg.idFn(i), err)
			}
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds an n-vertex simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(i), err)
			}
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
