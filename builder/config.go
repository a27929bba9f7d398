// SPDX-License-Identifier: MIT
//
// config.go — functional options and ID schemes for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     topology constructors themselves never panic.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function: the same idx always yields
// the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// BuilderOption customizes constructor behavior by mutating a
// builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable-after-resolution configuration
// shared by every constructor in one BuildGraph call.
type builderConfig struct {
	idFn   IDFn    // vertex ID scheme
	weight float64 // constant weight applied to every emitted edge
}

// newBuilderConfig resolves options over the defaults:
// decimal IDs, unit edge weight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		weight: 1.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the deterministic vertex ID generator.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeight sets the constant weight applied to every emitted edge.
// Panics on negative weight (core would reject it edge by edge anyway;
// failing here pinpoints the misconfiguration).
func WithWeight(w float64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithWeight(%v): weight must be ≥ 0", w))
	}

	return func(c *builderConfig) {
		c.weight = w
	}
}
