// Package bfs walks a core.Graph breadth-first and records the hop count
// and predecessor of every region it reaches.
//
// Region code uses it three ways:
//
//   - Hop distances from a region drive seed spreading (regiongraph).
//   - Reachability inside one district's member set is the contiguity test
//     (WithinSet, in district).
//   - Fewest-hop routes between regions, ending the walk as soon as the
//     destination is visited (WithOnVisit returning ErrStop).
//
// Determinism: core.Graph returns neighbours sorted, and they are queued in
// that order, so Order, Hops and Parent are reproducible.
//
// Complexity: O(V + E) time and O(V) memory, where V and E count only what
// the walk reaches.
//
//	res, err := bfs.Walk(g, "12001", bfs.WithinSet(members), bfs.WithContext(ctx))
package bfs
