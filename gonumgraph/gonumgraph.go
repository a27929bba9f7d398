package gonumgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"

	"github.com/katalvlaran/lvlcut/sweep"
)

// ErrVertexNotFound indicates an operation referenced a vertex ID that does
// not name a node of the wrapped graph.
var ErrVertexNotFound = errors.New("gonumgraph: vertex not found")

// Graph is a read-only view of a gonum weighted undirected graph exposing
// the sweep capability set. The zero value is not usable; construct with
// Wrap.
type Graph struct {
	g graph.WeightedUndirected
}

// Graph satisfies the sweep capability set.
var _ sweep.Graph = (*Graph)(nil)

// Wrap returns a sweepable view of g. The view aliases g: it reflects
// later mutations and must not be used concurrently with them.
// Panics on a nil graph (programmer error).
func Wrap(g graph.WeightedUndirected) *Graph {
	if g == nil {
		panic("gonumgraph: Wrap(nil)")
	}

	return &Graph{g: g}
}

// Vertices returns every node ID rendered in decimal, sorted by numeric
// node ID ascending. This fixed order is the sweep's stable tie-break key.
// Complexity: O(V log V)
func (a *Graph) Vertices() []string {
	ids := a.nodeIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}

	return out
}

// Degree returns the weighted degree of id: the sum of the weights of its
// incident edges.
// Returns ErrVertexNotFound if id does not name a node.
// Complexity: O(deg(id))
func (a *Graph) Degree(id string) (float64, error) {
	nid, err := a.lookup(id)
	if err != nil {
		return 0, err
	}

	var deg float64
	it := a.g.From(nid)
	for it.Next() {
		deg += a.g.WeightedEdgeBetween(nid, it.Node().ID()).Weight()
	}

	return deg, nil
}

// ForEachNeighbor calls visit once per incident edge, neighbors in numeric
// node ID ascending order for reproducible traversal.
// Returns ErrVertexNotFound if id does not name a node.
// Complexity: O(deg(id) log deg(id)) due to the ordering guarantee.
func (a *Graph) ForEachNeighbor(id string, visit func(to string, weight float64)) error {
	nid, err := a.lookup(id)
	if err != nil {
		return err
	}

	// Collect and sort neighbor IDs; gonum's iterator order is not stable.
	var neighbors []int64
	it := a.g.From(nid)
	for it.Next() {
		neighbors = append(neighbors, it.Node().ID())
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })

	for _, to := range neighbors {
		visit(strconv.FormatInt(to, 10), a.g.WeightedEdgeBetween(nid, to).Weight())
	}

	return nil
}

// lookup parses a decimal vertex ID and checks the node exists.
func (a *Graph) lookup(id string) (int64, error) {
	nid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a node ID", ErrVertexNotFound, id)
	}
	if a.g.Node(nid) == nil {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return nid, nil
}

// nodeIDs returns all node IDs sorted ascending.
func (a *Graph) nodeIDs() []int64 {
	var ids []int64
	it := a.g.Nodes()
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
