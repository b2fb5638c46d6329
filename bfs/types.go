package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for Walk and Result.
var (
	// ErrGraphNil is returned when Walk receives a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start region is not in the graph.
	ErrStartNotFound = errors.New("bfs: start region not found")

	// ErrNoPath is returned by PathTo for a region the walk did not reach.
	ErrNoPath = errors.New("bfs: no path")

	// ErrStop may be returned by a visit hook to end the walk early. Walk
	// then returns the partial Result and a nil error.
	ErrStop = errors.New("bfs: stop walk")
)

// Option configures a Walk.
type Option func(*walkOptions)

type walkOptions struct {
	ctx     context.Context
	within  map[string]bool
	onVisit func(id string, hops int) error
}

// WithContext makes the walk return ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *walkOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithinSet confines the walk to the regions in members, e.g. the regions of
// one district. The start region is visited even when it is not a member.
// A nil set means no restriction.
func WithinSet(members map[string]bool) Option {
	return func(o *walkOptions) { o.within = members }
}

// WithOnVisit calls fn for every region in visit order with its hop count
// from the start. Returning ErrStop ends the walk; any other error aborts it.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *walkOptions) { o.onVisit = fn }
}

// Result is the breadth-first tree of one walk. A region was reached iff it
// has a Hops entry.
type Result struct {
	// Order lists visited regions, nearest first.
	Order []string
	// Hops maps every discovered region to its edge count from the start.
	Hops map[string]int
	// Parent maps every discovered region except the start to its predecessor.
	Parent map[string]string
	// Stopped is set when a visit hook ended the walk with ErrStop.
	Stopped bool
}

// PathTo returns the fewest-hop route from the start to dest, both inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Hops[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, r.Hops[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
