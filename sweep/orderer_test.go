package sweep_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlcut/core"
	"github.com/katalvlaran/lvlcut/sweep"
)

// TestOrder_Ascending verifies vertices come back sorted by score.
func TestOrder_Ascending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}
	scores := map[string]float64{"a": 0.7, "b": -1.2, "c": 0.0, "d": 0.3}

	order, err := sweep.Order(g, scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"b", "c", "d", "a"}; !reflect.DeepEqual(order, want) {
		t.Errorf("Order = %v; want %v", order, want)
	}
}

// TestOrder_StableTieBreak verifies equal scores resolve by the graph's
// deterministic vertex order (lexicographic for core.Graph).
func TestOrder_StableTieBreak(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"zeta", "beta", "mid", "alpha"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}
	scores := map[string]float64{"zeta": 1.0, "beta": 1.0, "alpha": 1.0, "mid": 0.0}

	order, err := sweep.Order(g, scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "mid" first, then the tied trio in lexicographic order.
	if want := []string{"mid", "alpha", "beta", "zeta"}; !reflect.DeepEqual(order, want) {
		t.Errorf("Order = %v; want %v", order, want)
	}
}

// TestOrder_Validation covers the InvalidInput conditions.
func TestOrder_Validation(t *testing.T) {
	if _, err := sweep.Order(nil, nil); !errors.Is(err, sweep.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := core.NewGraph()
	for _, id := range []string{"a", "b"} {
		if err := g.AddVertex(id); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		name   string
		scores map[string]float64
		want   error
	}{
		{"missing entry", map[string]float64{"a": 1}, sweep.ErrScoreCoverage},
		{"surplus entry", map[string]float64{"a": 1, "b": 2, "ghost": 3}, sweep.ErrScoreCoverage},
		{"misnamed entry", map[string]float64{"a": 1, "ghost": 2}, sweep.ErrScoreCoverage},
		{"NaN score", map[string]float64{"a": 1, "b": math.NaN()}, sweep.ErrScoreNotFinite},
		{"Inf score", map[string]float64{"a": math.Inf(1), "b": 2}, sweep.ErrScoreNotFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sweep.Order(g, tc.scores); !errors.Is(err, tc.want) {
				t.Errorf("want %v, got %v", tc.want, err)
			}
		})
	}
}
