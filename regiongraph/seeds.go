package regiongraph

// SelectDistributedSeeds picks k regions spread across the graph.
//
// Steps:
//  1. The most populous region is the first seed (first in insertion order on ties).
//  2. Each further seed is the remaining region whose hop distance to its
//     nearest chosen seed is largest (first in insertion order on ties).
//     Regions unreachable from every chosen seed are skipped while any
//     reachable region remains.
//  3. When no remaining region is reachable, the first remaining region in
//     insertion order is taken (islands still receive seeds).
//
// k is capped at the number of regions; k <= 0 returns nil.
//
// Complexity: O(k·(V + E)); one BFS per chosen seed maintains the
// nearest-seed distance of every region incrementally.
func (rg *Graph) SelectDistributedSeeds(k int) []string {
	if k <= 0 || len(rg.order) == 0 {
		return nil
	}
	if k > len(rg.order) {
		k = len(rg.order)
	}

	first := rg.order[0]
	for _, id := range rg.order[1:] {
		if rg.nodes[id].Population > rg.nodes[first].Population {
			first = id
		}
	}

	seeds := make([]string, 0, k)
	chosen := make(map[string]bool, k)
	// nearest[id] is the hop distance to the closest chosen seed; absent = unreachable.
	nearest := make(map[string]int, len(rg.order))

	add := func(id string) {
		seeds = append(seeds, id)
		chosen[id] = true
		for v, d := range rg.HopDistances(id) {
			if cur, ok := nearest[v]; !ok || d < cur {
				nearest[v] = d
			}
		}
	}
	add(first)

	for len(seeds) < k {
		next, bestDist := "", -1
		for _, id := range rg.order {
			if chosen[id] {
				continue
			}
			if d, ok := nearest[id]; ok && d > bestDist {
				next, bestDist = id, d
			}
		}
		if next == "" {
			for _, id := range rg.order {
				if !chosen[id] {
					next = id
					break
				}
			}
		}
		add(next)
	}

	return seeds
}
