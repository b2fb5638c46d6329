package district

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/polimap/bfs"
	"github.com/katalvlaran/polimap/geometry"
	"github.com/katalvlaran/polimap/regiongraph"
)

// district is the mutable per-district state. Population is derived from
// the allocation table and kept in step incrementally by every move.
type district struct {
	id         int
	population float64
	members    map[string]struct{}
}

// Balancer owns one districting run. It is not safe for concurrent use.
type Balancer struct {
	opts balancerOptions

	graph     *regiongraph.Graph
	order     []string
	alloc     *Allocations
	districts []*district // index = id − 1

	total  float64
	target float64
	report Report
}

// NewBalancer builds the region graph, picks seeds and grows the initial
// districts. Zero regions, numDistricts <= 0 or an empty adjacency produce a
// Balancer whose BalanceDistricts returns an empty result.
//
// Errors:
//   - regiongraph.ErrEmptyRegionID, ErrDuplicateRegion or ErrNegativePopulation
//     for malformed regions.
func NewBalancer(regions []regiongraph.Region, numDistricts int, adj geometry.Adjacency, opts ...Option) (*Balancer, error) {
	o := defaultBalancerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Balancer{
		opts:   o,
		alloc:  newAllocations(len(regions), o.cfg.Epsilon),
		report: Report{Reason: HaltNotRun},
	}
	if len(regions) == 0 || numDistricts <= 0 || len(adj) == 0 {
		o.logger.Debug("district: nothing to balance",
			"regions", len(regions), "districts", numDistricts, "adjacency", len(adj))
		return b, nil
	}

	g, err := regiongraph.Build(regions, adj)
	if err != nil {
		return nil, fmt.Errorf("district: %w", err)
	}
	b.graph = g
	b.order = g.IDs()
	b.total = float64(regiongraph.TotalPopulation(regions))
	b.target = b.total / float64(numDistricts)
	b.report.Target = b.target

	b.districts = make([]*district, numDistricts)
	for i := range b.districts {
		b.districts[i] = &district{id: i + 1, members: make(map[string]struct{})}
	}
	b.grow()

	o.logger.Debug("district: initial partition",
		"regions", len(b.order), "districts", numDistricts, "target", b.target,
		"spread", b.spread())

	return b, nil
}

// grow assigns every region wholly to one district: seeds first, then one
// shared breadth-first frontier, then leftovers to the smallest district.
func (b *Balancer) grow() {
	seeds := b.graph.SelectDistributedSeeds(len(b.districts))
	owner := make(map[string]int, len(b.order))
	queue := make([]string, 0, len(b.order))
	for i, s := range seeds {
		b.assign(s, i+1)
		owner[s] = i + 1
		queue = append(queue, s)
	}

	for head := 0; head < len(queue); head++ {
		r := queue[head]
		for _, nb := range b.graph.Neighbors(r) {
			if _, ok := owner[nb]; ok {
				continue
			}
			owner[nb] = owner[r]
			b.assign(nb, owner[r])
			queue = append(queue, nb)
		}
	}

	for _, r := range b.order {
		if _, ok := owner[r]; ok {
			continue
		}
		d := b.smallest()
		owner[r] = d.id
		b.assign(r, d.id)
		b.opts.logger.Warn("district: unreached region assigned to smallest district",
			"region", r, "district", d.id)
	}
}

func (b *Balancer) assign(region string, id int) {
	b.alloc.assign(region, id)
	d := b.districts[id-1]
	d.population += b.pop(region)
	d.members[region] = struct{}{}
}

// smallest returns the least populated district, lowest ID on ties.
func (b *Balancer) smallest() *district {
	best := b.districts[0]
	for _, d := range b.districts[1:] {
		if d.population < best.population {
			best = d
		}
	}

	return best
}

func (b *Balancer) pop(region string) float64 {
	return float64(b.graph.Node(region).Population)
}

// BalanceDistricts runs the balancing loop and returns the districts ordered
// by ID. maxIterations <= 0 and tolerancePercent <= 0 fall back to the
// configured values. Calling it again continues from the current state.
//
// The only error is the context's, when it is cancelled mid-run.
func (b *Balancer) BalanceDistricts(maxIterations int, tolerancePercent float64) ([]Result, error) {
	if len(b.districts) == 0 {
		return []Result{}, nil
	}
	if maxIterations <= 0 {
		maxIterations = b.opts.cfg.MaxIterations
	}
	if tolerancePercent <= 0 {
		tolerancePercent = b.opts.cfg.TolerancePercent
	}
	tolerance := b.target * tolerancePercent / 100

	b.report.Iterations = 0
	b.report.Converged = false
	b.report.Reason = HaltIterationBudget
	for it := 0; it < maxIterations; it++ {
		if err := b.opts.ctx.Err(); err != nil {
			return nil, err
		}
		if b.spread() <= tolerance {
			b.report.Reason = HaltConverged
			break
		}
		mv, ok := b.bestMove()
		if !ok {
			b.report.Reason = HaltNoMove
			break
		}
		b.apply(&mv)
		b.report.Iterations++
		b.opts.onMove(mv)
	}
	if b.spread() <= tolerance {
		b.report.Reason = HaltConverged
	}
	b.report.Converged = b.report.Reason == HaltConverged
	b.report.Spread = b.spread()
	b.report.MaxDeviation = b.maxDeviation()

	b.opts.logger.Info("district: balancing finished",
		"reason", string(b.report.Reason), "iterations", b.report.Iterations,
		"spread", b.report.Spread, "tolerance", tolerance)

	return b.Results(), nil
}

// Report describes the most recent BalanceDistricts run.
func (b *Balancer) Report() Report { return b.report }

// Target returns the ideal population per district.
func (b *Balancer) Target() float64 { return b.target }

// Allocations exposes the ownership table for inspection.
func (b *Balancer) Allocations() *Allocations { return b.alloc }

func (b *Balancer) populations() []float64 {
	out := make([]float64, len(b.districts))
	for i, d := range b.districts {
		out[i] = d.population
	}

	return out
}

func (b *Balancer) spread() float64 {
	if len(b.districts) == 0 {
		return 0
	}
	p := b.populations()

	return floats.Max(p) - floats.Min(p)
}

func (b *Balancer) maxDeviation() float64 {
	var worst float64
	for _, d := range b.districts {
		worst = math.Max(worst, math.Abs(d.population-b.target))
	}

	return worst
}

// bestMove scans donors by ID, receivers by ID and border regions in input
// order, keeping the first candidate with the largest reward.
func (b *Balancer) bestMove() (Move, bool) {
	var best Move
	found := false
	capFrac := b.opts.cfg.ShiftCapFraction
	eps := b.opts.cfg.Epsilon

	for _, from := range b.districts {
		if from.population-b.target <= eps {
			continue
		}
		for _, toID := range b.neighborDistricts(from) {
			to := b.districts[toID-1]
			if b.target-to.population <= eps {
				continue
			}
			for _, r := range b.borderRegions(from, to.id) {
				pop := b.pop(r)
				if pop <= 0 {
					continue
				}
				have := b.alloc.Get(r, from.id)
				// Overshooting the target is allowed; the reward rejects moves
				// that overshoot by more than they fix.
				amount := min(capFrac*pop, have*pop)
				if amount <= 0 {
					continue
				}
				reward := deviationDrop(from.population, to.population, amount, b.target)
				// Rewards within eps of the best so far are ties.
				if reward <= eps || (found && reward <= best.Reward+eps) {
					continue
				}
				frac := amount / pop
				if have-frac <= eps && !b.keepsContiguous(from, r) {
					continue
				}
				best = Move{Region: r, From: from.id, To: to.id, Fraction: frac, Amount: amount, Reward: reward}
				found = true
			}
		}
	}

	return best, found
}

// deviationDrop is the reduction of |from−target| + |to−target| when amount
// moves from one district to the other.
func deviationDrop(from, to, amount, target float64) float64 {
	before := math.Abs(from-target) + math.Abs(to-target)
	after := math.Abs(from-amount-target) + math.Abs(to+amount-target)

	return before - after
}

// apply executes mv and records the fraction and amount actually moved.
func (b *Balancer) apply(mv *Move) {
	pop := b.pop(mv.Region)
	mv.Fraction = b.alloc.transfer(mv.Region, mv.From, mv.To, mv.Fraction)
	mv.Amount = mv.Fraction * pop

	from, to := b.districts[mv.From-1], b.districts[mv.To-1]
	from.population -= mv.Amount
	to.population += mv.Amount
	to.members[mv.Region] = struct{}{}
	if !b.alloc.Holds(mv.Region, mv.From) {
		delete(from.members, mv.Region)
	}
}

// neighborDistricts returns the sorted IDs of districts that share a region
// with d or hold a region adjacent to one of d's regions.
func (b *Balancer) neighborDistricts(d *district) []int {
	seen := make(map[int]bool)
	for r := range d.members {
		for _, id := range b.alloc.Districts(r) {
			seen[id] = true
		}
		for _, nb := range b.graph.Neighbors(r) {
			for _, id := range b.alloc.Districts(nb) {
				seen[id] = true
			}
		}
	}
	delete(seen, d.id)

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// borderRegions returns, in input order, the regions of from that are
// shared with district to or adjacent to one of its regions.
func (b *Balancer) borderRegions(from *district, to int) []string {
	var out []string
	for _, r := range b.order {
		if _, ok := from.members[r]; !ok {
			continue
		}
		if b.alloc.Holds(r, to) {
			out = append(out, r)
			continue
		}
		for _, nb := range b.graph.Neighbors(r) {
			if b.alloc.Holds(nb, to) {
				out = append(out, r)
				break
			}
		}
	}

	return out
}

// keepsContiguous reports whether d stays one connected piece without
// region. Losing its last region is not allowed.
func (b *Balancer) keepsContiguous(d *district, region string) bool {
	rest := make(map[string]bool, len(d.members))
	start := ""
	for _, r := range b.order {
		if _, ok := d.members[r]; ok && r != region {
			rest[r] = true
			if start == "" {
				start = r
			}
		}
	}
	if start == "" {
		return false
	}

	return b.connected(rest, start, bfs.WithContext(b.opts.ctx))
}

// connected reports whether a walk from start inside set reaches all of set.
// A cancelled walk counts as not connected.
func (b *Balancer) connected(set map[string]bool, start string, opts ...bfs.Option) bool {
	res, err := bfs.Walk(b.graph.Core(), start, append(opts, bfs.WithinSet(set))...)
	if err != nil {
		return false
	}

	return len(res.Order) == len(set)
}

// Contiguous reports whether every non-empty district is one connected
// piece of the region graph.
func (b *Balancer) Contiguous() bool {
	for _, d := range b.districts {
		set := make(map[string]bool, len(d.members))
		start := ""
		for _, r := range b.order {
			if _, ok := d.members[r]; ok {
				set[r] = true
				if start == "" {
					start = r
				}
			}
		}
		if start != "" && !b.connected(set, start) {
			return false
		}
	}

	return true
}

// Results snapshots the districts ordered by ID. Regions appear in input
// order with their fractional population and complete allocation row.
func (b *Balancer) Results() []Result {
	out := make([]Result, 0, len(b.districts))
	for _, d := range b.districts {
		res := Result{ID: d.id, Population: d.population, Counties: []CountyShare{}}
		for _, r := range b.order {
			frac := b.alloc.Get(r, d.id)
			if frac <= 0 {
				continue
			}
			res.Counties = append(res.Counties, CountyShare{
				Name:        r,
				Population:  b.pop(r) * frac,
				Fraction:    frac,
				Allocations: b.alloc.Row(r),
			})
		}
		out = append(out, res)
	}

	return out
}

// Audit recomputes every derived quantity from the allocation table.
//
// Errors:
//   - ErrAllocationDrift when a region's fractions do not sum to 1.
//   - ErrPopulationDrift when a district total disagrees with the table.
//   - ErrMembershipDrift when a member set disagrees with the table.
func (b *Balancer) Audit() error {
	const sumTolerance = 1e-6

	recomputed := make([]float64, len(b.districts))
	for _, r := range b.order {
		if s := b.alloc.Sum(r); math.Abs(s-1) > sumTolerance {
			return fmt.Errorf("%w: %q sums to %g", ErrAllocationDrift, r, s)
		}
		for _, id := range b.alloc.Districts(r) {
			recomputed[id-1] += b.pop(r) * b.alloc.Get(r, id)
			if _, ok := b.districts[id-1].members[r]; !ok {
				return fmt.Errorf("%w: %q missing from district %d", ErrMembershipDrift, r, id)
			}
		}
	}
	for i, d := range b.districts {
		if math.Abs(recomputed[i]-d.population) > 1e-3 {
			return fmt.Errorf("%w: district %d holds %g, table says %g",
				ErrPopulationDrift, d.id, d.population, recomputed[i])
		}
		for r := range d.members {
			if !b.alloc.Holds(r, d.id) {
				return fmt.Errorf("%w: district %d lists %q without allocation", ErrMembershipDrift, d.id, r)
			}
		}
	}

	return nil
}
