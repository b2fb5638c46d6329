package geometry_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polimap/geometry"
)

// square returns the path of the axis-aligned square [x,x+s]×[y,y+s].
func square(x, y, s float64) string {
	return fmt.Sprintf("M%g %g H%g V%g H%g Z", x, y, x+s, y+s, x)
}

func shape(t *testing.T, d string) *geometry.Shape {
	t.Helper()
	s, err := geometry.NewShape("s", d)
	require.NoError(t, err)

	return s
}

func TestTouches(t *testing.T) {
	const eps = geometry.DefaultEpsilon
	unit := shape(t, square(0, 0, 1)).Polygon

	cases := []struct {
		name  string
		other string
		want  bool
	}{
		{"shared edge", square(1, 0, 1), true},
		{"shared corner", square(1, 1, 1), true},
		{"partial edge", square(1, 0.5, 1), true},
		{"disjoint", square(3, 3, 1), false},
		{"overlap", square(0.5, 0.5, 1), false},
		{"identical", square(0, 0, 1), false},
		{"nested sharing edges", "M0 0 H0.5 V1 H0 Z", false},
		{"contains", square(-1, -1, 3), false},
		{"inside", square(0.25, 0.25, 0.5), false},
		{"gap", square(1.01, 0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := shape(t, tc.other).Polygon
			assert.Equal(t, tc.want, geometry.Touches(unit, other, eps))
			assert.Equal(t, tc.want, geometry.Touches(other, unit, eps), "symmetry")
		})
	}
}

func TestShapeMetrics(t *testing.T) {
	s := shape(t, square(2, 2, 2))
	assert.InDelta(t, 4.0, s.Area(), 1e-12)
	c := s.Centroid()
	assert.InDelta(t, 3.0, c[0], 1e-12)
	assert.InDelta(t, 3.0, c[1], 1e-12)
}

// TestBuildAdjacency_Grid lays out a 3×3 grid of unit squares.
func TestBuildAdjacency_Grid(t *testing.T) {
	paths := make(map[string]string)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			paths[fmt.Sprintf("%d%d", r, c)] = square(float64(c), float64(r), 1)
		}
	}
	adj := geometry.BuildAdjacency(paths)

	require.Equal(t, 9, adj.Len())
	assert.True(t, adj.IsSymmetric())
	// Corners touch diagonally too (point contact counts as touching).
	assert.Equal(t, []string{"01", "10", "11"}, adj.Neighbors("00"))
	assert.Len(t, adj.Neighbors("11"), 8)
	assert.False(t, adj.Has("00", "22"))
}

// TestBuildAdjacency_ExcludesDegenerate keeps going past bad regions.
func TestBuildAdjacency_ExcludesDegenerate(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	paths := map[string]string{
		"a":      square(0, 0, 1),
		"b":      square(1, 0, 1),
		"dot":    "M0 0 L0 0 Z",
		"broken": "M0 0 Q1",
		"island": square(10, 10, 1),
	}
	adj := geometry.BuildAdjacency(paths, geometry.WithLogger(logger))

	assert.ElementsMatch(t, []string{"a", "b", "island"}, adj.IDs())
	_, hasDot := adj["dot"]
	assert.False(t, hasDot)
	assert.True(t, adj.Has("a", "b"))
	assert.Empty(t, adj.Neighbors("island"))
	assert.Contains(t, logs.String(), "region=dot")
	assert.Contains(t, logs.String(), "region=broken")
}

func TestBuildAdjacency_Tolerance(t *testing.T) {
	paths := map[string]string{
		"a": square(0, 0, 1),
		"b": square(1.001, 0, 1),
	}
	assert.False(t, geometry.BuildAdjacency(paths).Has("a", "b"))
	assert.True(t, geometry.BuildAdjacency(paths, geometry.WithEpsilon(0.01)).Has("a", "b"))
}

func TestAdjacencyHelpers(t *testing.T) {
	a := geometry.Complete("x", "y", "z")
	assert.True(t, a.IsSymmetric())
	assert.Equal(t, []string{"y", "z"}, a.Neighbors("x"))

	a.Add("x", "x")
	assert.False(t, a.Has("x", "x"))

	broken := geometry.Adjacency{"p": {"q": {}}, "q": {}}
	assert.False(t, broken.IsSymmetric())
	assert.Empty(t, broken.Neighbors("nope"))
}

func TestAdjacencyOfParsedShapes(t *testing.T) {
	paths := map[string]string{
		"a": square(0, 0, 1),
		"b": square(1.001, 0, 1),
		"c": square(0, 1, 1),
	}
	var shapes []*geometry.Shape
	for _, id := range []string{"a", "b", "c"} {
		s, err := geometry.NewShape(id, paths[id])
		require.NoError(t, err)
		shapes = append(shapes, s)
	}

	adj := geometry.AdjacencyOf(shapes)
	assert.Equal(t, geometry.BuildAdjacency(paths), adj)
	assert.Equal(t, []string{"c"}, adj.Neighbors("a"))
	assert.False(t, adj.Has("a", "b"))
	assert.False(t, adj.Has("b", "c"))

	loose := geometry.AdjacencyOf(shapes, geometry.WithEpsilon(0.01))
	assert.True(t, loose.Has("a", "b"))

	assert.Empty(t, geometry.AdjacencyOf(nil))
}

func TestShapeNestsHoles(t *testing.T) {
	ring := shape(t, "M0 0 H3 V3 H0 Z M1 1 H2 V2 H1 Z")
	require.Len(t, ring.Polygon, 1)
	assert.Len(t, ring.Polygon[0], 2)
	assert.InDelta(t, 8.0, ring.Area(), 1e-12)

	// An island in a lake: shell, hole, shell.
	atoll := shape(t, "M0 0 H5 V5 H0 Z M1 1 H4 V4 H1 Z M2 2 H3 V3 H2 Z")
	require.Len(t, atoll.Polygon, 2)
	assert.Len(t, atoll.Polygon[0], 2)
	assert.Len(t, atoll.Polygon[1], 1)
	assert.InDelta(t, 17.0, atoll.Area(), 1e-12)

	// Side by side sub-paths stay separate shells.
	pair := shape(t, square(0, 0, 1)+" "+square(2, 0, 1))
	assert.Len(t, pair.Polygon, 2)
}

func TestEnclaveBordersSurroundingRegion(t *testing.T) {
	paths := map[string]string{
		"county": "M0 0 H3 V3 H0 Z M1 1 H2 V2 H1 Z",
		"city":   square(1, 1, 1),
		"east":   square(3, 0, 1),
	}
	adj := geometry.BuildAdjacency(paths)
	assert.True(t, adj.Has("county", "city"))
	assert.True(t, adj.Has("county", "east"))
	assert.False(t, adj.Has("city", "east"))
	assert.True(t, adj.IsSymmetric())
}
