package regiongraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polimap/bfs"
	"github.com/katalvlaran/polimap/core"
	"github.com/katalvlaran/polimap/geometry"
)

// Graph is the region graph: a core.Graph for topology plus the resolved
// node attributes. Nodes are enumerated in insertion order.
type Graph struct {
	g     *core.Graph
	nodes map[string]*Node
	order []string
}

// New returns an empty region graph sized for n regions.
func New(n int) *Graph {
	return &Graph{
		g:     core.NewGraph(core.WithCapacity(n)),
		nodes: make(map[string]*Node, n),
		order: make([]string, 0, n),
	}
}

// Build adds every region as a node, then one edge per adjacency pair whose
// endpoints are both known regions, and finally computes similarity weights.
// Adjacency entries for unknown regions are ignored; regions missing from the
// adjacency simply have no neighbours.
func Build(regions []Region, adj geometry.Adjacency) (*Graph, error) {
	rg := New(len(regions))
	for _, r := range regions {
		if err := rg.AddNode(r); err != nil {
			return nil, err
		}
	}
	for _, id := range rg.order {
		for _, nb := range adj.Neighbors(id) {
			if nb == id || rg.nodes[nb] == nil {
				continue
			}
			if err := rg.AddEdge(id, nb, 1); err != nil {
				return nil, err
			}
		}
	}
	rg.RecomputeWeights()

	return rg, nil
}

// AddNode registers region r.
//
// Errors:
//   - ErrEmptyRegionID, ErrNegativePopulation, ErrDuplicateRegion.
func (rg *Graph) AddNode(r Region) error {
	if r.ID == "" {
		return ErrEmptyRegionID
	}
	if r.Population < 0 {
		return fmt.Errorf("%w: %q has %d", ErrNegativePopulation, r.ID, r.Population)
	}
	if _, ok := rg.nodes[r.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegion, r.ID)
	}
	n := NewNode(r)
	rg.nodes[r.ID] = &n
	rg.order = append(rg.order, r.ID)

	return rg.g.AddVertex(r.ID)
}

// AddEdge connects two known regions with weight w.
//
// Errors:
//   - ErrUnknownRegion if either endpoint was not added with AddNode.
//   - core.ErrLoopNotAllowed for id1 == id2.
func (rg *Graph) AddEdge(id1, id2 string, w float64) error {
	if rg.nodes[id1] == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, id1)
	}
	if rg.nodes[id2] == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, id2)
	}

	return rg.g.AddEdge(id1, id2, w)
}

// Node returns the resolved node for id, or nil.
func (rg *Graph) Node(id string) *Node { return rg.nodes[id] }

// IDs returns region IDs in insertion order.
func (rg *Graph) IDs() []string {
	out := make([]string, len(rg.order))
	copy(out, rg.order)

	return out
}

// Len returns the number of regions.
func (rg *Graph) Len() int { return len(rg.order) }

// Core exposes the underlying topology for traversal packages.
func (rg *Graph) Core() *core.Graph { return rg.g }

// Neighbors returns the bordering regions of id, sorted. Unknown IDs have none.
func (rg *Graph) Neighbors(id string) []string {
	nbrs, err := rg.g.NeighborIDs(id)
	if err != nil {
		return nil
	}

	return nbrs
}

// Weight returns the similarity weight of edge {id1,id2}, or 0 when absent.
func (rg *Graph) Weight(id1, id2 string) float64 {
	w, _ := rg.g.Weight(id1, id2)

	return w
}

// RecomputeWeights replaces every edge weight with the similarity product.
func (rg *Graph) RecomputeWeights() {
	for _, e := range rg.g.Edges() {
		a, b := rg.nodes[e.From], rg.nodes[e.To]
		// Edge exists, so SetWeight cannot fail.
		_ = rg.g.SetWeight(e.From, e.To, Similarity(a, b))
	}
}

// Similarity scores how alike two regions are, in (0, 1].
func Similarity(a, b *Node) float64 {
	w := scaledRatio(float64(a.Population), float64(b.Population))
	if a.HasEconomy && b.HasEconomy {
		w *= scaledRatio(a.GDPPerCapita, b.GDPPerCapita)
	}

	switch {
	case a.LeadingParty == "" || b.LeadingParty == "":
		w *= UnknownLeaderScore
	case a.LeadingParty == b.LeadingParty:
		w *= SameLeaderScore
	default:
		w *= DifferentLeaderScore
	}

	return w
}

// scaledRatio maps min/max of x and y into [SimilarityFloor, 1].
// Two zeros are identical (ratio 1); one zero gives ratio 0.
func scaledRatio(x, y float64) float64 {
	x, y = math.Abs(x), math.Abs(y)
	hi, lo := math.Max(x, y), math.Min(x, y)
	ratio := 1.0
	if hi > 0 {
		ratio = lo / hi
	}

	return SimilarityFloor + (1-SimilarityFloor)*ratio
}

// ConnectedComponents returns the regions grouped by reachability. Components
// are ordered by their first region in insertion order; regions inside a
// component are in breadth-first order from that region.
func (rg *Graph) ConnectedComponents() [][]string {
	seen := make(map[string]bool, len(rg.order))
	var comps [][]string
	for _, id := range rg.order {
		if seen[id] {
			continue
		}
		res, err := bfs.Walk(rg.g, id)
		if err != nil {
			// Only possible for a vertex missing from core, which AddNode prevents.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// ShortestPath returns the fewest-hop path from a to b inclusive.
// The boolean is false when either region is unknown or b is unreachable.
// The walk stops as soon as b is visited.
func (rg *Graph) ShortestPath(a, b string) ([]string, bool) {
	if rg.nodes[a] == nil || rg.nodes[b] == nil {
		return nil, false
	}
	res, err := bfs.Walk(rg.g, a, bfs.WithOnVisit(func(id string, _ int) error {
		if id == b {
			return bfs.ErrStop
		}
		return nil
	}))
	if err != nil {
		return nil, false
	}
	path, err := res.PathTo(b)
	if err != nil {
		return nil, false
	}

	return path, true
}

// HopDistances returns the hop count from id to every reachable region.
func (rg *Graph) HopDistances(id string) map[string]int {
	res, err := bfs.Walk(rg.g, id)
	if err != nil {
		return nil
	}

	return res.Hops
}
