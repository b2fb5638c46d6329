package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polimap/core"
)

// Walk explores g breadth-first from start. Neighbours are taken in the
// sorted order core.Graph returns, so the result is reproducible. Edge
// weights are ignored.
//
// Errors:
//   - ErrGraphNil, ErrStartNotFound (wrapped) for bad input.
//   - ctx.Err() when the context from WithContext is done.
//   - A visit hook's error, wrapped, unless it is ErrStop.
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := walkOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.VertexCount()
	if o.within != nil && len(o.within) < n {
		n = len(o.within) + 1
	}
	res := &Result{
		Order:  make([]string, 0, n),
		Hops:   make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	res.Hops[start] = 0
	queue := make([]string, 1, n)
	queue[0] = start

	// head advances instead of reslicing so the backing array is reused.
	for head := 0; head < len(queue); head++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		id := queue[head]
		hops := res.Hops[id]
		res.Order = append(res.Order, id)
		if o.onVisit != nil {
			if err := o.onVisit(id, hops); err != nil {
				if errors.Is(err, ErrStop) {
					res.Stopped = true
					return res, nil
				}
				return nil, fmt.Errorf("bfs: visiting %q: %w", id, err)
			}
		}

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbours of %q: %w", id, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Hops[nb]; seen {
				continue
			}
			if o.within != nil && !o.within[nb] {
				continue
			}
			res.Hops[nb] = hops + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}

	return res, nil
}
