// This file declares the Graph type, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates a negative weight was passed to AddEdge.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop contributes twice its weight to the degree of its vertex.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
// Each parallel edge is stored and visited independently.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory graph data structure: an undirected
// multigraph with non-negative float64 weights and optional self-loops.
//
// Adjacency is mirrored: adjacency[u][v] and adjacency[v][u] hold the same
// parallel-edge weights (a self-loop is stored once under adjacency[v][v]).
// mu guards all storage; readers take the read lock only, so concurrent
// read-only algorithm runs over one Graph never block each other.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	// adjacency[(from)ID][(to)ID] = weights of all parallel edges from→to
	adjacency map[string]map[string][]float64
	edgeCount int // number of undirected edges (parallel edges counted individually)
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph permits no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string][]float64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
