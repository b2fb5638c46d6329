package election

import (
	"log/slog"
	"strings"
)

// System identifies an electoral system.
type System string

// Supported systems.
const (
	FPTP             System = "fptp"
	TwoRound         System = "two-round"
	ElectoralCollege System = "electoral-college"
	SNTV             System = "sntv"
	BlockVote        System = "block-vote"
	PluralityMMD     System = "plurality-mmd"
	PartyListPR      System = "party-list-pr"
	MMP              System = "mmp"
)

var systemAliases = map[string]System{
	"first-past-the-post":             FPTP,
	"two-round-system":                TwoRound,
	"single-non-transferable-vote":    SNTV,
	"block":                           BlockVote,
	"plurality-multi-member":          PluralityMMD,
	"plurality-multi-member-district": PluralityMMD,
	"party-list":                      PartyListPR,
	"list-pr":                         PartyListPR,
	"mixed-member-proportional":       MMP,
}

// ParseSystem resolves a system identifier case-insensitively, accepting
// the canonical names and a few long-form aliases.
func ParseSystem(s string) (System, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch sys := System(key); sys {
	case FPTP, TwoRound, ElectoralCollege, SNTV, BlockVote, PluralityMMD, PartyListPR, MMP:
		return sys, true
	}
	sys, ok := systemAliases[key]

	return sys, ok
}

// IsPlurality reports whether s belongs to the plurality family.
func (s System) IsPlurality() bool {
	switch s {
	case FPTP, TwoRound, ElectoralCollege, SNTV, BlockVote, PluralityMMD:
		return true
	}

	return false
}

// Method is a highest-averages allocation method.
type Method string

const (
	DHondt      Method = "dhondt"
	SainteLague Method = "sainte-lague"
)

// ParseMethod resolves a method name; unknown names are D'Hondt.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sainte-lague", "sainte-laguë", "saintelague", "webster":
		return SainteLague
	default:
		return DHondt
	}
}

// divisor returns the divisor applied to a party already holding won seats.
func (m Method) divisor(won int) int64 {
	if m == SainteLague {
		return int64(2*won + 1)
	}

	return int64(won + 1)
}

// SeatKind tells how a winner obtained the seat.
type SeatKind string

const (
	SeatConstituency SeatKind = "constituency"
	SeatList         SeatKind = "list"
	SeatOffice       SeatKind = "office"
)

// Candidate is one contestant with the votes they received.
type Candidate struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	PartyID string `json:"partyId" yaml:"partyId"`
	Votes   int64  `json:"votes" yaml:"votes"`
}

// Party is a roster entry. Popularity is a relative weight used only when
// party totals have to be synthesized.
type Party struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Color      string  `json:"color" yaml:"color"`
	Popularity float64 `json:"popularity" yaml:"popularity"`
}

// PartyVote is a party's list-vote total.
type PartyVote struct {
	PartyID string `json:"partyId" yaml:"partyId"`
	Votes   int64  `json:"votes" yaml:"votes"`
}

// Config describes the contest.
type Config struct {
	System           System  `json:"system" yaml:"system"`
	SeatsToFill      int     `json:"seatsToFill" yaml:"seatsToFill"`
	ThresholdPercent float64 `json:"thresholdPercent" yaml:"thresholdPercent"`
	Method           Method  `json:"method" yaml:"method"`
	// PartyLists holds each party's ordered list for list seats.
	PartyLists map[string][]Candidate `json:"partyLists,omitempty" yaml:"partyLists,omitempty"`
	// ConstituencySeats is the MMP constituency share of SeatsToFill.
	ConstituencySeats int `json:"constituencySeats" yaml:"constituencySeats"`
}

// Tally is the raw vote data of one contest.
type Tally struct {
	Candidates     []Candidate `json:"candidates"`
	PartyVotes     []PartyVote `json:"partyVotes,omitempty"`
	TotalVotesCast int64       `json:"totalVotesCast"`
}

// Winner is an awarded seat.
type Winner struct {
	Candidate Candidate `json:"candidate"`
	Seat      SeatKind  `json:"seat"`
}

// PartyVoteSummary is one row of the per-party vote table.
type PartyVoteSummary struct {
	PartyID    string  `json:"partyId"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Outcome is the result of Process.
type Outcome struct {
	System     System             `json:"system"`
	Winners    []Winner           `json:"winners"`
	PartyVotes []PartyVoteSummary `json:"partyVotes"`
	PartySeats map[string]int     `json:"partySeats"`
	// Ranking lists the candidates by votes, most first (plurality and MMP constituency).
	Ranking []Candidate `json:"ranking,omitempty"`
}

// Option configures Process.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the diagnostics logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
