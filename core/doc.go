// Package core provides the thread-safe, undirected graph primitive used by
// the region graph and the traversal packages of polimap.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are identified by non-empty strings and remembered in insertion
//     order, so every enumeration is reproducible.
//   - Edges are undirected, unique per unordered vertex pair, and carry a
//     float64 weight. Re-adding an existing pair overwrites its weight.
//   - Self-loops are rejected (a region never borders itself).
//   - NeighborIDs returns neighbours sorted lexicographically, which keeps
//     every breadth-first traversal built on top of it deterministic.
//   - A single sync.RWMutex guards all state; readers never block each other.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(a, b string, w float64) error   // O(1)
//	SetWeight(a, b string, w float64) error // O(1)
//	Weight(a, b string) (float64, bool)     // O(1)
//	Edges() []Edge                          // O(E log E), sorted by (From, To)
//
//	// Neighbourhood
//	NeighborIDs(id string) ([]string, error) // O(d log d)
//
//	// Views
//	InducedSubgraph(g, keep) *Graph          // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrLoopNotAllowed  - both endpoints are the same vertex.
package core
