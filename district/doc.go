// Package district partitions a region graph into a fixed number of
// contiguous, population-balanced districts and packages the result for
// rendering and reporting.
//
// What:
//
//   - Balancer: seeds districts with regiongraph.SelectDistributedSeeds,
//     grows them with one shared breadth-first frontier, then repeatedly
//     moves small population fractions across district borders until the
//     population spread is within tolerance, no move helps, or the iteration
//     budget is spent.
//   - Allocations: the single source of truth for who owns what. Every region
//     maps district IDs to the fraction of its population they hold; the
//     fractions of a region always sum to 1.
//   - Result / CountyShare: frozen output, one entry per district, each
//     county carrying its fractional population and full allocation row.
//   - Colors: golden-angle hue rotation, one display colour per district.
//   - SeatsFor: 2020 U.S. House apportionment lookup (default 1).
//   - Generator + Cache: geometry → adjacency → balance in one call, memoised
//     by a composite key covering every input that affects the output.
//
// Balancing loop (per iteration):
//
//  1. spread = max(population) − min(population); stop when spread ≤
//     target × TolerancePercent / 100.
//  2. For every over-target district, every neighbouring under-target
//     district and every region on their shared border, the candidate shift is
//     min(ShiftCapFraction × pop, donor share × pop).
//     Its reward is the reduction in |pop − target| summed over both districts.
//  3. Apply the strictly best positive move that keeps the donor contiguous
//     (only checked when the donor would lose the region entirely); halt when
//     there is none.
//
// A shift may overshoot the target, but only positive-reward moves are taken,
// so total deviation strictly falls and the largest deviation never grows.
//
// Degenerate input (no regions, no districts, no geometry) yields an empty
// result, never an error. The only error of BalanceDistricts is context
// cancellation.
package district
