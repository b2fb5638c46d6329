// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetWeight/Weight/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge connects a and b with weight w, creating missing endpoints.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//  2. Lock, ensure both vertices exist.
//  3. Store the weight under the canonical pair key (overwriting any previous
//     weight) and mirror the adjacency in both directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, w float64) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(a)
	g.addVertexLocked(b)
	g.edges[newPairKey(a, b)] = w
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return nil
}

// SetWeight replaces the weight of an existing edge.
//
// Errors:
//   - ErrEdgeNotFound if a and b are not connected.
func (g *Graph) SetWeight(a, b string, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := newPairKey(a, b)
	if _, ok := g.edges[k]; !ok {
		return ErrEdgeNotFound
	}
	g.edges[k] = w

	return nil
}

// Weight returns the weight of edge {a,b} and whether it exists.
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.edges[newPairKey(a, b)]

	return w, ok
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Edges returns a snapshot of every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{From: k.a, To: k.b, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
