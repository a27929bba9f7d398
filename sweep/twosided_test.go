package sweep_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcut/core"
	"github.com/katalvlaran/lvlcut/sweep"
)

// TestTwoSidedSweep_RecoversBipartiteComponent: a K_{2,2} component living
// next to a triangle. Signed scores with large magnitude on the bipartite
// component make the sweep absorb it first, side by side; once the whole
// component is in, every edge is a good bipartite edge and the ratio hits 0.
func TestTwoSidedSweep_RecoversBipartiteComponent(t *testing.T) {
	g := core.NewGraph()
	// K_{2,2}: left {a0,a1}, right {a2,a3}.
	for _, e := range [][2]string{
		{"a0", "a2"}, {"a0", "a3"}, {"a1", "a2"}, {"a1", "a3"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	// A separate triangle (odd cycle: not bipartite).
	for _, e := range [][2]string{
		{"t0", "t1"}, {"t1", "t2"}, {"t2", "t0"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	scores := map[string]float64{
		"a0": -4.0, "a1": -3.5, // left side: negative
		"a2": 3.0, "a3": 2.5, // right side: positive
		"t0": 0.5, "t1": 0.4, "t2": 0.3, // the triangle trails the ordering
	}

	res, err := sweep.TwoSidedSweep(g, scores)
	require.NoError(t, err)

	assert.Equal(t, []string{"a0", "a1"}, res.Left)
	assert.Equal(t, []string{"a2", "a3"}, res.Right)
	assert.Zero(t, res.Ratio, "an exactly bipartite, isolated component scores 0")
}

// TestTwoSidedSweep_SelfLoopPenalty: a self-loop sits inside whichever
// side its vertex joins, charging 2·w to the numerator.
func TestTwoSidedSweep_SelfLoopPenalty(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "a", 1))

	// |score| ordering: [a, b]; only k=1 is a candidate.
	scores := map[string]float64{"a": -2.0, "b": 1.0}

	res, err := sweep.TwoSidedSweep(g, scores)
	require.NoError(t, err)

	// S={a} on the left: numerator = 2·1 (loop) + 1 (edge leaving S) = 3,
	// vol(S)=3, total=4, denominator = min(3,1) = 1.
	assert.Equal(t, []string{"a"}, res.Left)
	assert.Empty(t, res.Right)
	assert.InDelta(t, 3.0, res.Ratio, 1e-12)
}

// TestTwoSidedSweep_Deterministic: identical inputs, identical outputs.
func TestTwoSidedSweep_Deterministic(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"u", "v"}, {"v", "w"}, {"w", "x"}, {"x", "u"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	scores := map[string]float64{"u": -1.5, "v": 1.5, "w": -0.5, "x": 0.5}

	first, err := sweep.TwoSidedSweep(g, scores)
	require.NoError(t, err)
	second, err := sweep.TwoSidedSweep(g, scores)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestTwoSidedSweep_Validation mirrors the one-sided failure ladder.
func TestTwoSidedSweep_Validation(t *testing.T) {
	_, err := sweep.TwoSidedSweep(nil, nil)
	assert.ErrorIs(t, err, sweep.ErrGraphNil)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("only"))

	_, err = sweep.TwoSidedSweep(g, map[string]float64{})
	assert.ErrorIs(t, err, sweep.ErrScoreCoverage)

	_, err = sweep.TwoSidedSweep(g, map[string]float64{"only": 0})
	assert.ErrorIs(t, err, sweep.ErrNoValidSweep)
}

// TestTwoSidedSweep_ContextCancellation: cooperative cancellation applies
// to the two-sided scan as well.
func TestTwoSidedSweep_ContextCancellation(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	scores := map[string]float64{"a": -2, "b": 1, "c": -0.5, "d": 0.25}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep.TwoSidedSweep(g, scores, sweep.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
