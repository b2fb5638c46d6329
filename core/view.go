package core

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true (in the source's
// insertion order), and all edges whose endpoints are both kept, with their
// weights. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(keep)))
	for _, id := range g.order {
		if keep[id] {
			out.addVertexLocked(id)
		}
	}
	for k, w := range g.edges {
		if !keep[k.a] || !keep[k.b] {
			continue
		}
		out.edges[k] = w
		out.adjacency[k.a][k.b] = struct{}{}
		out.adjacency[k.b][k.a] = struct{}{}
	}

	return out
}
