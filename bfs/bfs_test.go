package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polimap/bfs"
	"github.com/katalvlaran/polimap/core"
)

// line builds v0–v1–…–v(n-1).
func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1))
	}

	return g
}

// ring builds the four-region loop A–B–C–D–A.
func ring(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0.5))
	}

	return g
}

func TestWalkRejectsBadInput(t *testing.T) {
	_, err := bfs.Walk(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Walk(core.NewGraph(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)
}

func TestWalkOrderAndHops(t *testing.T) {
	res, err := bfs.Walk(ring(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Hops)
	assert.Equal(t, map[string]string{"B": "A", "D": "A", "C": "B"}, res.Parent)
	assert.False(t, res.Stopped)
}

func TestWalkStaysInComponent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y", 1))
	require.NoError(t, g.AddEdge("P", "Q", 1))

	res, err := bfs.Walk(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)
	assert.NotContains(t, res.Hops, "P")

	_, err = res.PathTo("Q")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestWalkWithinSet(t *testing.T) {
	g := ring(t)

	// Without B the loop still joins A and C through D.
	res, err := bfs.Walk(g, "A", bfs.WithinSet(map[string]bool{"A": true, "C": true, "D": true}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, res.Order)

	res, err = bfs.Walk(g, "A", bfs.WithinSet(map[string]bool{"A": true, "C": true}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)

	// The start is visited even outside the set.
	res, err = bfs.Walk(g, "B", bfs.WithinSet(map[string]bool{"C": true}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, res.Order)
}

func TestPathTo(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "E"}, {"E", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	res, err := bfs.Walk(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "E", "D"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestOnVisitStop(t *testing.T) {
	var seen []int
	res, err := bfs.Walk(line(t, 6), "v0", bfs.WithOnVisit(func(id string, hops int) error {
		seen = append(seen, hops)
		if id == "v2" {
			return bfs.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.True(t, res.Stopped)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)

	path, err := res.PathTo("v2")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, path)
}

func TestOnVisitErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.Walk(line(t, 3), "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, bfs.ErrStop)
}

func TestWalkCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Walk(line(t, 10), "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
