package regiongraph

import "errors"

// Sentinel errors for region graph construction.
var (
	// ErrEmptyRegionID indicates a region without an identifier.
	ErrEmptyRegionID = errors.New("regiongraph: region ID is empty")

	// ErrDuplicateRegion indicates the same region ID was added twice.
	ErrDuplicateRegion = errors.New("regiongraph: duplicate region")

	// ErrUnknownRegion indicates an edge endpoint that is not a node.
	ErrUnknownRegion = errors.New("regiongraph: unknown region")

	// ErrNegativePopulation indicates a region with population < 0.
	ErrNegativePopulation = errors.New("regiongraph: negative population")
)

// Similarity tunables used by RecomputeWeights.
const (
	// SimilarityFloor is the lower end of the population and economic
	// similarity range: identical regions score 1, extreme ratios approach it.
	SimilarityFloor = 0.7

	// SameLeaderScore applies when both regions' leading party matches.
	SameLeaderScore = 1.0

	// DifferentLeaderScore applies when the leading parties differ.
	DifferentLeaderScore = 0.3

	// UnknownLeaderScore applies when either region lacks political data.
	UnknownLeaderScore = 0.5
)

// EconomicProfile carries optional economic attributes of a region.
type EconomicProfile struct {
	GDPPerCapita float64 `json:"gdpPerCapita" yaml:"gdpPerCapita"`
}

// PartyPopularity is one entry of a region's political landscape.
type PartyPopularity struct {
	PartyName  string  `json:"name" yaml:"name"`
	Popularity float64 `json:"popularity" yaml:"popularity"`
}

// Region is an administrative unit supplied by the caller.
//
// Economy and Landscape are optional: nil / empty means "no data".
type Region struct {
	ID         string            `json:"id" yaml:"id"`
	Population int64             `json:"population" yaml:"population"`
	Economy    *EconomicProfile  `json:"economicProfile,omitempty" yaml:"economicProfile,omitempty"`
	Landscape  []PartyPopularity `json:"politicalLandscape,omitempty" yaml:"politicalLandscape,omitempty"`
}

// Node is a Region with its optional data resolved.
type Node struct {
	Region

	// GDPPerCapita is 0 when HasEconomy is false.
	GDPPerCapita float64
	HasEconomy   bool

	// LeadingParty is the most popular party ("" when the landscape is empty).
	// Ties keep the party listed first.
	LeadingParty string
}

// NewNode resolves the optional fields of r.
func NewNode(r Region) Node {
	n := Node{Region: r}
	if r.Economy != nil {
		n.GDPPerCapita = r.Economy.GDPPerCapita
		n.HasEconomy = true
	}
	best := -1.0
	for _, p := range r.Landscape {
		if p.Popularity > best {
			best = p.Popularity
			n.LeadingParty = p.PartyName
		}
	}

	return n
}

// TotalPopulation sums the population of regions.
func TotalPopulation(regions []Region) int64 {
	var total int64
	for _, r := range regions {
		total += r.Population
	}

	return total
}
