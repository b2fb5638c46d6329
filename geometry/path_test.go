package geometry_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polimap/geometry"
)

func TestParsePath_AbsoluteSquare(t *testing.T) {
	rings, err := geometry.ParsePath("M0,0 L10,0 L10,10 L0,10 Z")
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, rings[0])
}

func TestParsePath_RelativeAndShorthand(t *testing.T) {
	// m then implicit relative line-tos, h/v shorthands, closes automatically.
	rings, err := geometry.ParsePath("m5 5 10 0 v10 h-10")
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, orb.Ring{{5, 5}, {15, 5}, {15, 15}, {5, 15}, {5, 5}}, rings[0])
}

func TestParsePath_CompactNumbers(t *testing.T) {
	rings, err := geometry.ParsePath("M0-0L1e1,0L.5.5-0-1z")
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, orb.Ring{{0, 0}, {10, 0}, {0.5, 0.5}, {0, -1}, {0, 0}}, rings[0])
}

func TestParsePath_CurvesKeepEndPoints(t *testing.T) {
	d := "M0 0 C1 1 2 2 10 0 Q12 5 10 10 A5 5 0 01 0 10 Z"
	rings, err := geometry.ParsePath(d)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	assert.Equal(t, orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}, rings[0])
}

func TestParsePath_MultipleSubpaths(t *testing.T) {
	d := "M0 0H1V1H0Z m3 0 h1 v1 h-1 z"
	rings, err := geometry.ParsePath(d)
	require.NoError(t, err)
	require.Len(t, rings, 2)
	assert.Equal(t, orb.Point{3, 0}, rings[1][0])
	assert.Equal(t, orb.Point{4, 1}, rings[1][2])
}

func TestParsePath_Degenerate(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"single":      "M1 1",
		"one point":   "M1 1 L1 1 L1 1 Z",
		"two points":  "M0 0 L5 5 Z",
		"only closes": "M0 0 Z",
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			rings, err := geometry.ParsePath(d)
			require.NoError(t, err)
			assert.Empty(t, rings)
		})
	}
}

func TestParsePath_Malformed(t *testing.T) {
	for _, d := range []string{"0 0 L1 1", "M0 0 L1", "M0 0 X1 1", "M0 0 Z 5 5"} {
		_, err := geometry.ParsePath(d)
		assert.ErrorIs(t, err, geometry.ErrBadPath, d)
	}
}
