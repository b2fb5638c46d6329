// File: types.go
// Role: Graph and Edge types, options, and the sentinel errors shared by
// every graph operation.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected connection between two vertices.
//
// From and To are stored in lexicographic order (From < To) so that an
// unordered pair has exactly one representation.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is an application-defined scalar (similarity for region graphs).
	Weight float64
}

// pairKey is the canonical key of an unordered vertex pair.
type pairKey struct {
	a, b string
}

// newPairKey orders the endpoints so that (a,b) and (b,a) share one key.
func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[string]int, n)
			g.order = make([]string, 0, n)
			g.adjacency = make(map[string]map[string]struct{}, n)
		}
	}
}

// Graph is an undirected, weighted, loop-free graph keyed by string IDs.
//
// mu guards every field; vertices maps an ID to its position in order.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]int                 // vertex ID → insertion index
	order     []string                       // vertex IDs in insertion order
	edges     map[pairKey]float64            // unordered pair → weight
	adjacency map[string]map[string]struct{} // vertex ID → neighbour set
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]int),
		edges:     make(map[pairKey]float64),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
