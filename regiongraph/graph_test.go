package regiongraph_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polimap/geometry"
	"github.com/katalvlaran/polimap/regiongraph"
)

// chain returns n regions r0..r(n-1) with the given populations and a path adjacency.
func chain(pops ...int64) ([]regiongraph.Region, geometry.Adjacency) {
	regions := make([]regiongraph.Region, len(pops))
	adj := geometry.NewAdjacency()
	for i, p := range pops {
		regions[i] = regiongraph.Region{ID: fmt.Sprintf("r%d", i), Population: p}
		if i > 0 {
			adj.Add(regions[i-1].ID, regions[i].ID)
		}
	}

	return regions, adj
}

// RegionGraphSuite groups construction and query scenarios.
type RegionGraphSuite struct {
	suite.Suite
}

func TestRegionGraphSuite(t *testing.T) {
	suite.Run(t, new(RegionGraphSuite))
}

func (s *RegionGraphSuite) TestAddNodeErrors() {
	g := regiongraph.New(2)
	s.Require().NoError(g.AddNode(regiongraph.Region{ID: "a", Population: 1}))
	s.ErrorIs(g.AddNode(regiongraph.Region{ID: "a"}), regiongraph.ErrDuplicateRegion)
	s.ErrorIs(g.AddNode(regiongraph.Region{}), regiongraph.ErrEmptyRegionID)
	s.ErrorIs(g.AddNode(regiongraph.Region{ID: "b", Population: -1}), regiongraph.ErrNegativePopulation)
	s.ErrorIs(g.AddEdge("a", "zzz", 1), regiongraph.ErrUnknownRegion)
}

func (s *RegionGraphSuite) TestBuildIgnoresUnknownAdjacency() {
	regions, adj := chain(10, 20)
	adj.Add("r1", "ghost")

	g, err := regiongraph.Build(regions, adj)
	s.Require().NoError(err)
	s.Equal([]string{"r0", "r1"}, g.IDs())
	s.Equal([]string{"r0"}, g.Neighbors("r1"))
	s.Nil(g.Neighbors("ghost"))
	s.Equal(0.0, g.Weight("r0", "ghost"))
}

func (s *RegionGraphSuite) TestConnectedComponents() {
	regions, adj := chain(1, 1, 1, 1)
	regions = append(regions, regiongraph.Region{ID: "island", Population: 5})
	// break the chain between r1 and r2
	delete(adj["r1"], "r2")
	delete(adj["r2"], "r1")

	g, err := regiongraph.Build(regions, adj)
	s.Require().NoError(err)
	s.Equal([][]string{{"r0", "r1"}, {"r2", "r3"}, {"island"}}, g.ConnectedComponents())
}

func (s *RegionGraphSuite) TestShortestPath() {
	regions, adj := chain(1, 1, 1, 1, 1)
	adj.Add("r0", "r3")
	regions = append(regions, regiongraph.Region{ID: "island"})

	g, err := regiongraph.Build(regions, adj)
	s.Require().NoError(err)

	path, ok := g.ShortestPath("r0", "r4")
	s.True(ok)
	s.Equal([]string{"r0", "r3", "r4"}, path)

	path, ok = g.ShortestPath("r0", "island")
	s.False(ok)
	s.Nil(path)

	_, ok = g.ShortestPath("r0", "nowhere")
	s.False(ok)
}

func TestNewNode_ResolvesOptionalData(t *testing.T) {
	n := regiongraph.NewNode(regiongraph.Region{
		ID:      "x",
		Economy: &regiongraph.EconomicProfile{GDPPerCapita: 52000},
		Landscape: []regiongraph.PartyPopularity{
			{PartyName: "Green", Popularity: 0.2},
			{PartyName: "Blue", Popularity: 0.4},
			{PartyName: "Red", Popularity: 0.4},
		},
	})
	assert.True(t, n.HasEconomy)
	assert.Equal(t, 52000.0, n.GDPPerCapita)
	assert.Equal(t, "Blue", n.LeadingParty)

	empty := regiongraph.NewNode(regiongraph.Region{ID: "y"})
	assert.False(t, empty.HasEconomy)
	assert.Equal(t, "", empty.LeadingParty)
}

func TestSimilarity(t *testing.T) {
	blue := []regiongraph.PartyPopularity{{PartyName: "Blue", Popularity: 1}}
	red := []regiongraph.PartyPopularity{{PartyName: "Red", Popularity: 1}}
	node := func(pop int64, gdp *float64, land []regiongraph.PartyPopularity) *regiongraph.Node {
		r := regiongraph.Region{ID: "n", Population: pop, Landscape: land}
		if gdp != nil {
			r.Economy = &regiongraph.EconomicProfile{GDPPerCapita: *gdp}
		}
		n := regiongraph.NewNode(r)
		return &n
	}
	g40, g20 := 40000.0, 20000.0

	cases := []struct {
		name string
		a, b *regiongraph.Node
		want float64
	}{
		{"identical, same leader", node(100, &g40, blue), node(100, &g40, blue), 1.0},
		{"half population, no economy, unknown leader", node(100, nil, nil), node(50, nil, blue), 0.85 * 0.5},
		{"half gdp, different leader", node(100, &g40, blue), node(100, &g20, red), 0.85 * 0.3},
		{"economy on one side only is skipped", node(100, &g40, blue), node(100, nil, blue), 1.0},
		{"both empty populations", node(0, nil, blue), node(0, nil, blue), 1.0},
		{"one empty population", node(0, nil, blue), node(10, nil, blue), regiongraph.SimilarityFloor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, regiongraph.Similarity(tc.a, tc.b), 1e-12)
			assert.InDelta(t, tc.want, regiongraph.Similarity(tc.b, tc.a), 1e-12)
		})
	}
}

func TestBuild_WeightsRecomputed(t *testing.T) {
	regions, adj := chain(100, 50)
	g, err := regiongraph.Build(regions, adj)
	require.NoError(t, err)
	assert.InDelta(t, 0.85*regiongraph.UnknownLeaderScore, g.Weight("r1", "r0"), 1e-12)
}

func TestSelectDistributedSeeds(t *testing.T) {
	// r2 is the most populous; the chain ends are farthest from it.
	regions, adj := chain(10, 10, 90, 10, 10, 10, 10)
	g, err := regiongraph.Build(regions, adj)
	require.NoError(t, err)

	assert.Equal(t, []string{"r2"}, g.SelectDistributedSeeds(1))
	assert.Equal(t, []string{"r2", "r6"}, g.SelectDistributedSeeds(2))
	// r0 is 2 hops from r2, r4 is 2 hops from both: first encountered wins.
	assert.Equal(t, []string{"r2", "r6", "r0"}, g.SelectDistributedSeeds(3))
	assert.Len(t, g.SelectDistributedSeeds(50), 7)
	assert.Nil(t, g.SelectDistributedSeeds(0))
}

func TestSelectDistributedSeeds_Islands(t *testing.T) {
	regions, adj := chain(5, 50, 5)
	regions = append(regions,
		regiongraph.Region{ID: "isle-a", Population: 1},
		regiongraph.Region{ID: "isle-b", Population: 1},
	)
	g, err := regiongraph.Build(regions, adj)
	require.NoError(t, err)

	// Reachable regions are preferred; islands are taken in order afterwards.
	assert.Equal(t, []string{"r1", "r0", "r2", "isle-a", "isle-b"}, g.SelectDistributedSeeds(5))
}

func TestSelectDistributedSeeds_TieOnPopulation(t *testing.T) {
	regions, adj := chain(7, 7, 7)
	g, err := regiongraph.Build(regions, adj)
	require.NoError(t, err)
	assert.Equal(t, []string{"r0", "r2"}, g.SelectDistributedSeeds(2))
}
