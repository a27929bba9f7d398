// File: methods.go
// Role: mutation (AddVertex, AddEdge) and read-only query APIs.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - ForEachNeighbor(id) visits neighbor IDs lex asc, parallel edges in
//     insertion order.
// Concurrency:
//   - Mutators hold the write lock; queries hold the read lock.

package core

import "sort"

// AddVertex inserts a vertex with the given ID if it does not exist yet.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is the empty string.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// AddEdge inserts an undirected edge u—v with weight w, creating missing
// endpoints automatically so fixtures can be built with AddEdge calls alone.
//
// Validation, in order:
//  1. u and v must be non-empty (ErrEmptyVertexID).
//  2. w must be ≥ 0 (ErrNegativeWeight).
//  3. u == v requires WithLoops (ErrLoopNotAllowed).
//  4. an existing u—v edge requires WithMultiEdges (ErrMultiEdgeNotAllowed).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v {
		if !g.allowLoops {
			return ErrLoopNotAllowed
		}
		g.ensureVertex(u)
		if len(g.adjacency[u][u]) > 0 && !g.allowMulti {
			return ErrMultiEdgeNotAllowed
		}
		// A self-loop is stored once; Degree counts it twice.
		g.adjacency[u][u] = append(g.adjacency[u][u], w)
		g.edgeCount++

		return nil
	}

	g.ensureVertex(u)
	g.ensureVertex(v)
	if len(g.adjacency[u][v]) > 0 && !g.allowMulti {
		return ErrMultiEdgeNotAllowed
	}
	// Mirror the edge into both adjacency rows.
	g.adjacency[u][v] = append(g.adjacency[u][v], w)
	g.adjacency[v][u] = append(g.adjacency[v][u], w)
	g.edgeCount++

	return nil
}

// ensureVertex creates the adjacency row for id if absent.
// Callers must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string][]float64)
	}
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges; parallel edges count
// individually, self-loops count once.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// This order is the stable tie-break key for downstream algorithms.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Degree returns the weighted degree of id: the sum of incident edge
// weights, with each self-loop contributing twice its weight (the standard
// Laplacian degree convention).
// Returns ErrEmptyVertexID or ErrVertexNotFound on invalid input.
// Complexity: O(deg(id))
func (g *Graph) Degree(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	var deg float64
	for to, weights := range row {
		for _, w := range weights {
			if to == id {
				deg += 2 * w // self-loop counts twice
			} else {
				deg += w
			}
		}
	}

	return deg, nil
}

// ForEachNeighbor calls visit once per edge incident to id, passing the
// neighbor's ID and the edge weight. Parallel edges trigger one call each;
// a self-loop triggers a single call with to == id and its natural weight.
// Neighbor IDs are visited in lexicographic ascending order so traversals
// are reproducible.
// Returns ErrEmptyVertexID or ErrVertexNotFound on invalid input.
// Complexity: O(deg(id) log deg(id)) due to the ordering guarantee.
func (g *Graph) ForEachNeighbor(id string, visit func(to string, weight float64)) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}

	// Sort neighbor IDs to ensure reproducible visiting order.
	neighbors := make([]string, 0, len(row))
	for to := range row {
		neighbors = append(neighbors, to)
	}
	sort.Strings(neighbors)

	for _, to := range neighbors {
		for _, w := range row[to] {
			visit(to, w)
		}
	}

	return nil
}
