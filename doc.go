// Package polimap draws electoral districts from county maps and tabulates
// elections over them.
//
// The pipeline, one package per stage:
//
//	geometry/     path data → polygons (orb) → symmetric "touches" adjacency
//	core/         thread-safe undirected weighted graph primitive
//	bfs/          breadth-first traversal with hooks, filters and depth limits
//	regiongraph/  counties as nodes, similarity-weighted borders, seed selection
//	district/     fractional population balancing into contiguous districts,
//	              colours, apportionment, cached plan generation
//	election/     plurality, party-list PR (D'Hondt, Sainte-Laguë) and MMP
//	gridmap/      synthetic grid states for demos and tests
//
// Everything is deterministic: equal inputs give equal districts, colours
// and seat counts. Malformed input degrades with a logged diagnostic instead
// of an error wherever a partial answer is still meaningful.
//
// Quick start:
//
//	gen := district.NewGenerator()
//	plan, err := gen.Generate(ctx, district.Request{
//		StateID: "NH",
//		Regions: counties,   // []regiongraph.Region
//		Paths:   outlines,   // map[county ID]path data
//	})
//
// See examples/state_election for a full walk-through.
package polimap
