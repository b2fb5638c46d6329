// File: methods_adjacent.go
// Role: Neighbourhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "sort"

// NeighborIDs returns the vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, validate existence (ErrVertexNotFound)
//     and copy the neighbour set.
//   - Stage 3: Sort the copy outside the lock.
//
// Determinism:
//   - Deterministic output order by contract (lex asc). Breadth-first
//     traversals rely on this for reproducible visit orders.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	g.mu.RUnlock()

	sort.Strings(out)

	return out, nil
}

// AdjacencyList returns a snapshot mapping every vertex to its sorted neighbour IDs.
// Returned slices are independent of the graph.
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		list := make([]string, 0, len(nbrs))
		for nb := range nbrs {
			list = append(list, nb)
		}
		out[id] = list
	}
	g.mu.RUnlock()

	for _, list := range out {
		sort.Strings(list)
	}

	return out
}
