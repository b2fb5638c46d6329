// Package gridmap builds synthetic states from a 2D grid of county
// populations, for demos, benchmarks and tests of the districting pipeline.
//
// Every land cell (value ≥ LandThreshold) becomes one square county with
// ID "x,y", its value as population and an outline in path data, so the
// grid can feed district.Generator exactly like real map data. Cells below
// the threshold are water and produce no county.
//
// The grid also knows its own topology: Adjacency follows Conn4 (N, E, S, W)
// or Conn8 (diagonals included). Because geometry counts corner contact as
// touching, Conn8 agrees with geometry.BuildAdjacency over Paths().
//
//	g, _ := gridmap.New([][]int64{
//		{120, 80, 0},
//		{ 95, 60, 40},
//	}, gridmap.DefaultOptions())
//	plan, _ := district.NewGenerator().Generate(ctx, g.Request("XX", 2))
package gridmap
