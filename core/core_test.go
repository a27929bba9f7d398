package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcut/core"
)

// TestAddVertex_Validation covers empty IDs and idempotent insertion.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding an existing vertex must be a no-op")
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
}

// TestAddEdge_Validation covers the full validation ladder.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("A", "B", -0.5), core.ErrNegativeWeight)
	require.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)

	require.NoError(t, g.AddEdge("A", "B", 1))
	require.ErrorIs(t, g.AddEdge("A", "B", 2), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge("B", "A", 2), core.ErrMultiEdgeNotAllowed,
		"parallel detection must be orientation-insensitive")
}

// TestAddEdge_AutoCreatesEndpoints verifies AddEdge inserts missing vertices.
func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y", 2.5))

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"X", "Y"}, g.Vertices())
}

// TestDegree_LaplacianConvention checks plain, weighted, loop and multi-edge degrees.
func TestDegree_LaplacianConvention(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("A", "B", 1.5))
	require.NoError(t, g.AddEdge("A", "B", 0.5)) // parallel
	require.NoError(t, g.AddEdge("A", "C", 2.0))
	require.NoError(t, g.AddEdge("A", "A", 3.0)) // self-loop

	degA, err := g.Degree("A")
	require.NoError(t, err)
	// 1.5 + 0.5 + 2.0 + 2*3.0
	assert.InDelta(t, 10.0, degA, 1e-12)

	degB, err := g.Degree("B")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, degB, 1e-12)

	_, err = g.Degree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestForEachNeighbor_Deterministic verifies visiting order and per-edge calls.
func TestForEachNeighbor_Deterministic(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "B", 3)) // parallel
	require.NoError(t, g.AddEdge("A", "A", 4)) // self-loop

	type visit struct {
		to string
		w  float64
	}
	var got []visit
	require.NoError(t, g.ForEachNeighbor("A", func(to string, w float64) {
		got = append(got, visit{to, w})
	}))

	want := []visit{{"A", 4}, {"B", 2}, {"B", 3}, {"C", 1}}
	assert.Equal(t, want, got)

	err := g.ForEachNeighbor("missing", func(string, float64) {})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestVertices_Sorted verifies the lexicographic iteration contract.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

// TestConcurrentReaders runs many read-only queries in parallel; the race
// detector flags any locking mistakes.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Vertices()
				if _, err := g.Degree("B"); err != nil {
					t.Error(err)

					return
				}
				if err := g.ForEachNeighbor("B", func(string, float64) {}); err != nil && !errors.Is(err, core.ErrVertexNotFound) {
					t.Error(err)

					return
				}
			}
		}()
	}
	wg.Wait()
}
