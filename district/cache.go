package district

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/polimap/regiongraph"
)

// CacheKey identifies a generated plan. The readable fields make collisions
// between different states impossible; Fingerprint covers everything else
// that influences the output.
type CacheKey struct {
	StateID         string
	TotalPopulation int64
	Districts       int
	Regions         int
	Fingerprint     uint64
}

// String renders the key for logging and singleflight grouping.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s/%d/%d/%d/%016x", k.StateID, k.TotalPopulation, k.Districts, k.Regions, k.Fingerprint)
}

// NewCacheKey derives the key of a request balanced into districts under cfg.
func NewCacheKey(req Request, districts int, cfg Config) CacheKey {
	return CacheKey{
		StateID:         req.StateID,
		TotalPopulation: regiongraph.TotalPopulation(req.Regions),
		Districts:       districts,
		Regions:         len(req.Regions),
		Fingerprint:     fingerprint(req, cfg),
	}
}

// fingerprint hashes region data in input order, geometry and any explicit
// adjacency in sorted ID order, and the tunables.
func fingerprint(req Request, cfg Config) uint64 {
	h := xxhash.New()
	field := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	num := func(f float64) { field(strconv.FormatUint(math.Float64bits(f), 16)) }

	for _, r := range req.Regions {
		field(r.ID)
		field(strconv.FormatInt(r.Population, 10))
		if r.Economy != nil {
			num(r.Economy.GDPPerCapita)
		} else {
			field("-")
		}
		for _, p := range r.Landscape {
			field(p.PartyName)
			num(p.Popularity)
		}
		field("|")
	}

	ids := make([]string, 0, len(req.Paths))
	for id := range req.Paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		field(id)
		field(req.Paths[id])
	}
	if req.Adjacency != nil {
		field("adjacency")
		for _, id := range req.Adjacency.IDs() {
			field(id)
			for _, nb := range req.Adjacency.Neighbors(id) {
				field(nb)
			}
			field("|")
		}
	}

	field(strconv.Itoa(cfg.MaxIterations))
	num(cfg.TolerancePercent)
	num(cfg.ShiftCapFraction)
	num(cfg.Epsilon)

	return h.Sum64()
}

// Cache memoises plans by key. It is safe for concurrent use and stores
// private copies, so callers may mutate what they put or get.
type Cache struct {
	mu      sync.RWMutex
	entries map[CacheKey]*Plan
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[CacheKey]*Plan)}
}

// Get returns a copy of the plan stored under k.
func (c *Cache) Get(k CacheKey) (*Plan, bool) {
	c.mu.RLock()
	p, ok := c.entries[k]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	return p.Clone(), true
}

// Put stores a copy of p under k.
func (c *Cache) Put(k CacheKey, p *Plan) {
	c.mu.Lock()
	c.entries[k] = p.Clone()
	c.mu.Unlock()
}

// Len returns the number of cached plans.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[CacheKey]*Plan)
	c.mu.Unlock()
}
