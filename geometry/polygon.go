package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Shape is the parsed outline of one region. Sub-paths nest by the even-odd
// rule: a ring inside an odd number of other rings is a hole of its innermost
// container, so an enclave cut out of a region borders it.
type Shape struct {
	ID      string
	Polygon orb.MultiPolygon
	Bound   orb.Bound
}

// NewShape parses d into a Shape for region id.
//
// Errors:
//   - ErrBadPath (wrapped) for malformed path data.
//   - ErrDegenerate (wrapped) when no usable outline remains.
func NewShape(id, d string) (*Shape, error) {
	rings, err := ParsePath(d)
	if err != nil {
		return nil, fmt.Errorf("region %q: %w", id, err)
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("region %q: %w", id, ErrDegenerate)
	}

	mp := nestRings(rings)

	return &Shape{ID: id, Polygon: mp, Bound: mp.Bound()}, nil
}

// nestRings groups rings into polygons by even-odd nesting depth. Shells keep
// their input order; holes follow their shell in input order.
func nestRings(rings []orb.Ring) orb.MultiPolygon {
	areas := make([]float64, len(rings))
	for i, r := range rings {
		areas[i] = math.Abs(planar.Area(r))
	}

	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for i := range rings {
		parent[i] = -1
		for j := range rings {
			if i == j || areas[i] >= areas[j] || !ringWithin(rings[i], rings[j]) {
				continue
			}
			depth[i]++
			if parent[i] < 0 || areas[j] < areas[parent[i]] {
				parent[i] = j
			}
		}
	}

	// Overlapping, non-nested rings can leave a hole without an even-depth
	// container; such a ring stays a shell.
	hole := func(i int) bool {
		return depth[i]%2 == 1 && depth[parent[i]]%2 == 0
	}
	shell := make([]int, len(rings))
	mp := make(orb.MultiPolygon, 0, len(rings))
	for i, r := range rings {
		if !hole(i) {
			shell[i] = len(mp)
			mp = append(mp, orb.Polygon{r})
		}
	}
	for i, r := range rings {
		if hole(i) {
			k := shell[parent[i]]
			mp[k] = append(mp[k], r)
		}
	}

	return mp
}

// ringWithin reports whether every vertex of inner lies inside or on outer.
func ringWithin(inner, outer orb.Ring) bool {
	if !outer.Bound().Contains(inner.Bound().Min) || !outer.Bound().Contains(inner.Bound().Max) {
		return false
	}
	for _, p := range inner {
		if !planar.RingContains(outer, p) {
			return false
		}
	}

	return true
}

// Centroid returns the area-weighted centroid of the shape.
func (s *Shape) Centroid() orb.Point {
	c, _ := planar.CentroidArea(s.Polygon)

	return c
}

// Area returns the unsigned planar area of the shape.
func (s *Shape) Area() float64 {
	return math.Abs(planar.Area(s.Polygon))
}

// segmentRelation classifies how two segments meet.
type segmentRelation int

const (
	disjoint segmentRelation = iota
	touching                 // share at least one point, no proper crossing
	crossing                 // intersect at a point interior to both
)

// Touches reports whether a and b share boundary points while their interiors
// do not overlap. Points closer than eps are treated as coincident.
//
// Steps:
//  1. Bound pre-check.
//  2. Every segment pair is classified; any proper crossing means the
//     interiors overlap.
//  3. Without any shared boundary point the shapes are disjoint or nested.
//  4. Sample points of each shape (vertices, edge midpoints, interior
//     centroids) must not lie strictly inside the other.
func Touches(a, b orb.MultiPolygon, eps float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if !a.Bound().Pad(eps).Intersects(b.Bound()) {
		return false
	}

	shared := false
	for _, pa := range a {
		for _, ra := range pa {
			for _, pb := range b {
				for _, rb := range pb {
					switch relateRings(ra, rb, eps) {
					case crossing:
						return false
					case touching:
						shared = true
					}
				}
			}
		}
	}
	if !shared {
		return false
	}

	return !interiorReaches(a, b, eps) && !interiorReaches(b, a, eps)
}

// relateRings returns the strongest relation over all segment pairs.
func relateRings(ra, rb orb.Ring, eps float64) segmentRelation {
	rel := disjoint
	for i := 0; i+1 < len(ra); i++ {
		sa := orb.Bound{Min: ra[i], Max: ra[i]}.Extend(ra[i+1]).Pad(eps)
		for j := 0; j+1 < len(rb); j++ {
			if !sa.Intersects(orb.Bound{Min: rb[j], Max: rb[j]}.Extend(rb[j+1])) {
				continue
			}
			switch relateSegments(ra[i], ra[i+1], rb[j], rb[j+1], eps) {
			case crossing:
				return crossing
			case touching:
				rel = touching
			}
		}
	}

	return rel
}

// relateSegments classifies segments p1p2 and q1q2.
func relateSegments(p1, p2, q1, q2 orb.Point, eps float64) segmentRelation {
	o1 := orientation(p1, p2, q1, eps)
	o2 := orientation(p1, p2, q2, eps)
	o3 := orientation(q1, q2, p1, eps)
	o4 := orientation(q1, q2, p2, eps)

	if o1*o2 < 0 && o3*o4 < 0 {
		return crossing
	}
	if onSegment(q1, p1, p2, eps) || onSegment(q2, p1, p2, eps) ||
		onSegment(p1, q1, q2, eps) || onSegment(p2, q1, q2, eps) {
		return touching
	}

	return disjoint
}

// orientation returns the sign of the cross product (b-a)×(c-a), or 0 when
// c is within eps of the line through a and b.
func orientation(a, b, c orb.Point, eps float64) int {
	cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
	length := math.Hypot(b[0]-a[0], b[1]-a[1])
	if length == 0 {
		return 0
	}
	switch d := cross / length; {
	case d > eps:
		return 1
	case d < -eps:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p lies within eps of segment ab.
func onSegment(p, a, b orb.Point, eps float64) bool {
	return pointSegmentDistance(p, a, b) <= eps
}

func pointSegmentDistance(p, a, b orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / l2
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(p[0]-(a[0]+t*dx), p[1]-(a[1]+t*dy))
}

// onBoundary reports whether p lies within eps of any edge of mp.
func onBoundary(mp orb.MultiPolygon, p orb.Point, eps float64) bool {
	for _, poly := range mp {
		for _, r := range poly {
			for i := 0; i+1 < len(r); i++ {
				if onSegment(p, r[i], r[i+1], eps) {
					return true
				}
			}
		}
	}

	return false
}

// strictlyInside reports whether p is inside mp and not on its boundary.
func strictlyInside(mp orb.MultiPolygon, p orb.Point, eps float64) bool {
	return planar.MultiPolygonContains(mp, p) && !onBoundary(mp, p, eps)
}

// interiorReaches reports whether any sample point of a lies strictly inside b.
func interiorReaches(a, b orb.MultiPolygon, eps float64) bool {
	for _, poly := range a {
		for _, r := range poly {
			for i := 0; i+1 < len(r); i++ {
				mid := orb.Point{(r[i][0] + r[i+1][0]) / 2, (r[i][1] + r[i+1][1]) / 2}
				if strictlyInside(b, r[i], eps) || strictlyInside(b, mid, eps) {
					return true
				}
			}
		}
		if c, area := planar.CentroidArea(poly); area != 0 &&
			strictlyInside(orb.MultiPolygon{poly}, c, eps) && strictlyInside(b, c, eps) {
			return true
		}
	}

	return false
}
