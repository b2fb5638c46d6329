package district

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/polimap/geometry"
	"github.com/katalvlaran/polimap/regiongraph"
)

// Request is everything needed to district one state.
type Request struct {
	StateID string
	Regions []regiongraph.Region
	// Paths maps region ID to its outline in path data.
	Paths map[string]string
	// Adjacency, when non-nil, is used as is and Paths is not parsed.
	Adjacency geometry.Adjacency
	// Districts <= 0 means SeatsFor(StateID).
	Districts int
}

// Plan is a finished districting.
type Plan struct {
	StateID   string   `json:"stateId"`
	Districts []Result `json:"districts"`
	Colors    []string `json:"colors"` // Colors[i] belongs to Districts[i]
	Report    Report   `json:"report"`
}

// Clone returns a deep copy of p.
func (p *Plan) Clone() *Plan {
	if p == nil {
		return nil
	}
	out := &Plan{
		StateID:   p.StateID,
		Districts: make([]Result, len(p.Districts)),
		Colors:    append([]string{}, p.Colors...),
		Report:    p.Report,
	}
	for i, d := range p.Districts {
		nd := Result{ID: d.ID, Population: d.Population, Counties: make([]CountyShare, len(d.Counties))}
		for j, c := range d.Counties {
			row := make(map[int]float64, len(c.Allocations))
			for k, v := range c.Allocations {
				row[k] = v
			}
			c.Allocations = row
			nd.Counties[j] = c
		}
		out.Districts[i] = nd
	}

	return out
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorConfig sets the balancing tunables; invalid configs are ignored.
func WithGeneratorConfig(cfg Config) GeneratorOption {
	return func(g *Generator) {
		if cfg.Validate() == nil {
			g.cfg = cfg
		}
	}
}

// WithGeneratorLogger sets the logger handed down to geometry and balancing.
func WithGeneratorLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCache shares a cache between generators.
func WithCache(c *Cache) GeneratorOption {
	return func(g *Generator) {
		if c != nil {
			g.cache = c
		}
	}
}

// Generator runs geometry → adjacency → balancing and memoises plans.
// Concurrent identical requests are computed once. Safe for concurrent use.
type Generator struct {
	cfg    Config
	logger *slog.Logger
	cache  *Cache
	group  singleflight.Group
}

// NewGenerator returns a Generator with its own cache unless WithCache is given.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{cfg: DefaultConfig(), logger: slog.Default(), cache: NewCache()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Cache returns the generator's plan cache.
func (g *Generator) Cache() *Cache { return g.cache }

// Generate districts req. Identical requests return equal, independent
// copies of one plan. Empty input yields an empty plan.
//
// Errors:
//   - regiongraph errors for malformed regions.
//   - ctx.Err() when ctx is done before the plan is ready. The computation
//     itself keeps running for other callers and still fills the cache.
func (g *Generator) Generate(ctx context.Context, req Request) (*Plan, error) {
	districts := req.Districts
	if districts <= 0 {
		districts = SeatsFor(req.StateID)
	}
	if len(req.Regions) == 0 || (len(req.Paths) == 0 && len(req.Adjacency) == 0) {
		return &Plan{StateID: req.StateID, Districts: []Result{}, Colors: []string{}, Report: Report{Reason: HaltNotRun}}, nil
	}

	key := NewCacheKey(req, districts, g.cfg)
	if p, ok := g.cache.Get(key); ok {
		g.logger.Debug("district: plan cache hit", "key", key.String())
		return p, nil
	}

	// The flight is shared, so it must outlive any single caller's context.
	work := context.WithoutCancel(ctx)
	ch := g.group.DoChan(key.String(), func() (interface{}, error) {
		if p, ok := g.cache.Get(key); ok {
			return p, nil
		}
		adj := req.Adjacency
		if adj == nil {
			adj = geometry.BuildAdjacency(req.Paths, geometry.WithLogger(g.logger))
		}
		b, err := NewBalancer(req.Regions, districts, adj,
			WithConfig(g.cfg), WithLogger(g.logger), WithContext(work))
		if err != nil {
			return nil, err
		}
		res, err := b.BalanceDistricts(0, 0)
		if err != nil {
			return nil, err
		}
		p := &Plan{StateID: req.StateID, Districts: res, Colors: Colors(len(res)), Report: b.Report()}
		g.cache.Put(key, p)

		return p, nil
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-ch:
	}
	if r.Err != nil {
		return nil, r.Err
	}
	g.logger.Debug("district: plan generated", "key", key.String(), "shared", r.Shared)

	return r.Val.(*Plan).Clone(), nil
}
