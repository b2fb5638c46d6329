// Package regiongraph models a state as a weighted undirected graph of
// regions (counties): nodes carry population, economic and political
// attributes, edges connect bordering regions and carry a similarity weight.
//
// What:
//
//   - Region: input record with explicit optional fields (EconomicProfile,
//     political landscape). Optional data is resolved into a Node once, at
//     AddNode time, so no later code checks for field presence.
//   - Graph: AddNode, AddEdge, Neighbors, Weight, ConnectedComponents,
//     ShortestPath, RecomputeWeights, SelectDistributedSeeds.
//   - Build: one-call construction from regions and a geometry.Adjacency.
//
// Weights:
//
//	weight = populationSimilarity × economicSimilarity × politicalSimilarity
//
//	  populationSimilarity = SimilarityFloor + (1-SimilarityFloor)·min/max   ∈ [0.7, 1]
//	  economicSimilarity   = same shape on GDP per capita, 1 when either side lacks data
//	  politicalSimilarity  = SameLeaderScore (1.0) | DifferentLeaderScore (0.3) | UnknownLeaderScore (0.5)
//
//	Weights are informational: the district balancer does not use them as a
//	hard constraint.
//
// Seeds:
//
//	SelectDistributedSeeds(k) starts from the most populous region and then
//	greedily adds the region farthest (in hops) from its nearest chosen seed,
//	spreading initial district centres across the map.
//
// No-path semantics:
//
//	ShortestPath reports (nil, false) for regions in different components.
//	Islands are expected geography, not an error.
//
// Complexity:
//
//   - ConnectedComponents: O(V + E).
//   - ShortestPath:        O(V + E).
//   - SelectDistributedSeeds: O(k·(V + E)).
package regiongraph
