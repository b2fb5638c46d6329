package geometry

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
)

// shapeRef places a shape's bound centre in the quadtree.
type shapeRef struct {
	idx    int
	center orb.Point
}

// Point allows shapeRef to satisfy the orb.Pointer interface.
func (r *shapeRef) Point() orb.Point { return r.center }

// BuildAdjacency parses every path and returns the symmetric touching relation.
//
// Regions are processed in sorted ID order. A region whose path is malformed
// or degenerate is logged at Warn level and left out of the result; every
// other region is present, possibly with an empty neighbour set.
func BuildAdjacency(paths map[string]string, opts ...Option) Adjacency {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	shapes := make([]*Shape, 0, len(ids))
	for _, id := range ids {
		s, err := NewShape(id, paths[id])
		if err != nil {
			o.logger.Warn("geometry: region excluded from adjacency",
				"region", id, "error", err)
			continue
		}
		shapes = append(shapes, s)
	}

	return adjacencyOf(shapes, o.epsilon)
}

// AdjacencyOf computes the touching relation over already parsed shapes.
func AdjacencyOf(shapes []*Shape, opts ...Option) Adjacency {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return adjacencyOf(shapes, o.epsilon)
}

func adjacencyOf(shapes []*Shape, eps float64) Adjacency {
	adj := NewAdjacency()
	if len(shapes) == 0 {
		return adj
	}

	// World bound and the largest half extents: two bounds can only intersect
	// when the other centre lies within this shape's bound grown by them.
	world := shapes[0].Bound
	var halfW, halfH float64
	for _, s := range shapes {
		adj.AddRegion(s.ID)
		world = world.Union(s.Bound)
		halfW = max(halfW, (s.Bound.Max[0]-s.Bound.Min[0])/2)
		halfH = max(halfH, (s.Bound.Max[1]-s.Bound.Min[1])/2)
	}

	qt := quadtree.New(world.Pad(1))
	for i, s := range shapes {
		// Centres lie inside the padded world bound, so Add cannot fail.
		_ = qt.Add(&shapeRef{idx: i, center: s.Bound.Center()})
	}

	var buf []orb.Pointer
	candidates := make([]int, 0, len(shapes))
	for i, s := range shapes {
		query := orb.Bound{
			Min: orb.Point{s.Bound.Min[0] - halfW - eps, s.Bound.Min[1] - halfH - eps},
			Max: orb.Point{s.Bound.Max[0] + halfW + eps, s.Bound.Max[1] + halfH + eps},
		}
		buf = qt.InBound(buf[:0], query)

		candidates = candidates[:0]
		for _, p := range buf {
			if j := p.(*shapeRef).idx; j > i {
				candidates = append(candidates, j)
			}
		}
		sort.Ints(candidates)

		for _, j := range candidates {
			other := shapes[j]
			if !s.Bound.Pad(eps).Intersects(other.Bound) {
				continue
			}
			if Touches(s.Polygon, other.Polygon, eps) {
				adj.Add(s.ID, other.ID)
			}
		}
	}

	return adj
}
