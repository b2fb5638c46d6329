package district

import (
	"context"
	"errors"
	"log/slog"
)

// Sentinel errors for district generation.
var (
	// ErrBadConfig indicates an out-of-range tunable.
	ErrBadConfig = errors.New("district: invalid configuration")

	// ErrAllocationDrift indicates a region whose allocation fractions do not sum to 1.
	ErrAllocationDrift = errors.New("district: allocation fractions do not sum to 1")

	// ErrPopulationDrift indicates a district population that disagrees with the allocation table.
	ErrPopulationDrift = errors.New("district: population total disagrees with allocations")

	// ErrMembershipDrift indicates a district member set that disagrees with the allocation table.
	ErrMembershipDrift = errors.New("district: member set disagrees with allocations")
)

// HaltReason explains why the balancing loop stopped.
type HaltReason string

const (
	// HaltNotRun means BalanceDistricts has not been called or had nothing to do.
	HaltNotRun HaltReason = "not-run"
	// HaltConverged means the population spread is within tolerance.
	HaltConverged HaltReason = "converged"
	// HaltNoMove means no positive, contiguity-preserving move exists.
	HaltNoMove HaltReason = "no-beneficial-move"
	// HaltIterationBudget means maxIterations moves were applied.
	HaltIterationBudget HaltReason = "iteration-budget"
)

// Report summarises a balancing run.
type Report struct {
	Iterations   int        `json:"iterations"`
	Converged    bool       `json:"converged"`
	Reason       HaltReason `json:"reason"`
	Target       float64    `json:"target"`
	Spread       float64    `json:"spread"`       // max − min district population
	MaxDeviation float64    `json:"maxDeviation"` // max |population − target|
}

// Move is one executed population transfer.
type Move struct {
	Region   string  `json:"region"`
	From     int     `json:"from"`
	To       int     `json:"to"`
	Fraction float64 `json:"fraction"` // share of the region's population moved
	Amount   float64 `json:"amount"`   // population moved
	Reward   float64 `json:"reward"`   // reduction of total absolute deviation
}

// CountyShare is one region's contribution to a district.
type CountyShare struct {
	Name        string          `json:"name"`
	Population  float64         `json:"population"`  // region population × fraction
	Fraction    float64         `json:"fraction"`    // fraction held by this district
	Allocations map[int]float64 `json:"allocations"` // complete allocation row of the region
}

// Split reports whether more than one district holds part of the region.
func (c CountyShare) Split() bool { return len(c.Allocations) > 1 }

// Result is a finalised district.
type Result struct {
	ID         int           `json:"id"`
	Population float64       `json:"population"`
	Counties   []CountyShare `json:"counties"`
}

// CountyNames lists the region IDs of the district in input order.
func (r Result) CountyNames() []string {
	out := make([]string, len(r.Counties))
	for i, c := range r.Counties {
		out[i] = c.Name
	}

	return out
}

// Option configures a Balancer.
type Option func(*balancerOptions)

type balancerOptions struct {
	cfg    Config
	logger *slog.Logger
	ctx    context.Context
	onMove func(Move)
}

func defaultBalancerOptions() balancerOptions {
	return balancerOptions{
		cfg:    DefaultConfig(),
		logger: slog.Default(),
		ctx:    context.Background(),
		onMove: func(Move) {},
	}
}

// WithConfig replaces the tunables. Invalid configurations are ignored in
// favour of DefaultConfig; validate with Config.Validate first.
func WithConfig(cfg Config) Option {
	return func(o *balancerOptions) {
		if cfg.Validate() == nil {
			o.cfg = cfg
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *balancerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext allows cancelling a long balancing run.
func WithContext(ctx context.Context) Option {
	return func(o *balancerOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnMove registers a hook called after every executed move.
func WithOnMove(fn func(Move)) Option {
	return func(o *balancerOptions) {
		if fn != nil {
			o.onMove = fn
		}
	}
}
