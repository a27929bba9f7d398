// SPDX-License-Identifier: MIT
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go files.
//   - Determinism: same inputs/options and constructor order ⇒ identical
//     graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlcut/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (loops/multi-edges).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
