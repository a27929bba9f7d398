// SPDX-License-Identifier: MIT
//
// impl_complete.go — Complete(n), CompleteBipartite(m,n) and Star(n)
// constructors.
//
// Contract:
//   - Complete: n ≥ 2; edges {i,j} for i<j, emitted in lexicographic (i,j).
//   - CompleteBipartite: m,n ≥ 1; left side 0..m−1, right side m..m+n−1,
//     edges (i, m+j) in ascending (i, j) — the canonical K_{m,n}.
//   - Star: n ≥ 2; center 0, leaves 1..n−1, edges (0, i) in ascending i.
//   - Weight: cfg.weight on every edge; IDs via cfg.idFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcut/core"
)

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	methodStar      = "Star"
	minCompleteSize = 2
	minSideSize     = 1
	minStarSize     = 2
)

// Complete returns a Constructor that builds the clique K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSize, ErrTooFewVertices)
		}

		return emitClique(g, cfg, methodComplete, 0, n)
	}
}

// CompleteBipartite returns a Constructor that builds K_{m,n}: every vertex
// of the left side adjacent to every vertex of the right side and no edges
// within a side — the exactly-bipartite fixture for Cheeger–Trevisan tests.
func CompleteBipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < minSideSize || n < minSideSize {
			return fmt.Errorf("%s: sides %d,%d < min=%d: %w", methodBipartite, m, n, minSideSize, ErrTooFewVertices)
		}
		for i := 0; i < m+n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, cfg.idFn(i), err)
			}
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(m+j)
				if err := g.AddEdge(u, v, cfg.weight); err != nil {
					return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_n: one center vertex
// connected to n−1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSize, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, cfg.idFn(i), err)
			}
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(0), cfg.idFn(i)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodStar, u, v, err)
			}
		}

		return nil
	}
}

// emitClique adds vertices offset..offset+size−1 and all edges among them.
// Shared by Complete and Barbell.
func emitClique(g *core.Graph, cfg builderConfig, method string, offset, size int) error {
	for i := 0; i < size; i++ {
		if err := g.AddVertex(cfg.idFn(offset + i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.idFn(offset+i), err)
		}
	}
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			u, v := cfg.idFn(offset+i), cfg.idFn(offset+j)
			if err := g.AddEdge(u, v, cfg.weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
			}
		}
	}

	return nil
}
