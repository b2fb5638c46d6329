package geometry

import (
	"errors"
	"log/slog"
	"sort"
)

// Sentinel errors for geometry parsing.
var (
	// ErrBadPath indicates malformed path data.
	ErrBadPath = errors.New("geometry: malformed path data")

	// ErrDegenerate indicates a path with no outline of at least 4 vertices.
	ErrDegenerate = errors.New("geometry: degenerate outline")
)

// DefaultEpsilon is the distance under which two points are considered equal.
const DefaultEpsilon = 1e-9

// MinRingVertices is the minimum vertex count of a closed, usable outline
// (a triangle plus the closing vertex).
const MinRingVertices = 4

// Option configures BuildAdjacency.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	epsilon float64
}

func defaultOptions() options {
	return options{
		logger:  slog.Default(),
		epsilon: DefaultEpsilon,
	}
}

// WithLogger routes diagnostics about excluded regions to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithEpsilon sets the touch tolerance. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// Adjacency maps a region ID to the set of region IDs it borders.
// Every region with usable geometry is a key, even without neighbours.
type Adjacency map[string]map[string]struct{}

// NewAdjacency returns an empty Adjacency.
func NewAdjacency() Adjacency {
	return make(Adjacency)
}

// AddRegion registers id with no neighbours if it is not yet present.
func (a Adjacency) AddRegion(id string) {
	if _, ok := a[id]; !ok {
		a[id] = make(map[string]struct{})
	}
}

// Add records that x and y border each other, in both directions.
// Self pairs are ignored.
func (a Adjacency) Add(x, y string) {
	if x == y {
		return
	}
	a.AddRegion(x)
	a.AddRegion(y)
	a[x][y] = struct{}{}
	a[y][x] = struct{}{}
}

// Has reports whether x borders y.
func (a Adjacency) Has(x, y string) bool {
	_, ok := a[x][y]

	return ok
}

// Neighbors returns the neighbours of id sorted lexicographically.
// Unknown IDs have no neighbours.
func (a Adjacency) Neighbors(id string) []string {
	set := a[id]
	out := make([]string, 0, len(set))
	for nb := range set {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out
}

// IDs returns every region ID in the map, sorted.
func (a Adjacency) IDs() []string {
	out := make([]string, 0, len(a))
	for id := range a {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of regions in the map.
func (a Adjacency) Len() int { return len(a) }

// IsSymmetric reports whether y ∈ a[x] ⟺ x ∈ a[y] for every pair.
func (a Adjacency) IsSymmetric() bool {
	for x, set := range a {
		for y := range set {
			if !a.Has(y, x) {
				return false
			}
		}
	}

	return true
}

// Complete returns an Adjacency where every listed region borders every other.
// Useful for synthetic maps and tests.
func Complete(ids ...string) Adjacency {
	a := NewAdjacency()
	for i, x := range ids {
		a.AddRegion(x)
		for _, y := range ids[i+1:] {
			a.Add(x, y)
		}
	}

	return a
}
