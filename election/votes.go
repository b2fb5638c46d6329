package election

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SynthesizePartyVotes distributes total votes across parties in proportion
// to their popularity. Shares are floored and the leftover votes go one each
// to the largest remainders (earlier party on ties), so the result sums to
// total exactly. Non-positive popularity counts as zero; when no party has
// any, every party weighs the same.
func SynthesizePartyVotes(parties []Party, total int64) []PartyVote {
	out := make([]PartyVote, len(parties))
	for i, p := range parties {
		out[i].PartyID = p.ID
	}
	if len(parties) == 0 || total <= 0 {
		return out
	}

	weights := make([]decimal.Decimal, len(parties))
	sum := decimal.Zero
	for i, p := range parties {
		w := decimal.Zero
		if p.Popularity > 0 {
			w = decimal.NewFromFloat(p.Popularity)
		}
		weights[i] = w
		sum = sum.Add(w)
	}
	if sum.IsZero() {
		for i := range weights {
			weights[i] = decimal.NewFromInt(1)
		}
		sum = decimal.NewFromInt(int64(len(weights)))
	}

	totalDec := decimal.NewFromInt(total)
	remainders := make([]decimal.Decimal, len(parties))
	var assigned int64
	for i, w := range weights {
		exact := totalDec.Mul(w).Div(sum)
		floor := exact.Floor()
		out[i].Votes = floor.IntPart()
		remainders[i] = exact.Sub(floor)
		assigned += out[i].Votes
	}

	order := make([]int, len(parties))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})
	for k := 0; assigned < total; k = (k + 1) % len(order) {
		out[order[k]].Votes++
		assigned++
	}

	return out
}

// Percentage returns votes as a percentage of total rounded to two places;
// 0 when total is not positive.
func Percentage(votes, total int64) float64 {
	if total <= 0 {
		return 0
	}

	return decimal.NewFromInt(votes).Mul(hundred).Div(decimal.NewFromInt(total)).Round(2).InexactFloat64()
}

// candidateVotesByParty sums candidate votes per party in first-appearance order.
func candidateVotesByParty(cands []Candidate) []PartyVote {
	pv := make([]PartyVote, 0, len(cands))
	for _, c := range cands {
		if c.PartyID == "" {
			continue
		}
		pv = append(pv, PartyVote{PartyID: c.PartyID, Votes: c.Votes})
	}

	return mergeVotes(pv)
}

func sumVotes(votes []PartyVote) int64 {
	var t int64
	for _, v := range votes {
		t += v.Votes
	}

	return t
}

// summarize builds the per-party vote table: roster parties first in roster
// order, then unknown party IDs in first-appearance order. The denominator is
// totalCast when positive, otherwise the sum of votes.
func summarize(votes []PartyVote, parties []Party, totalCast int64) []PartyVoteSummary {
	merged := mergeVotes(votes)
	byID := make(map[string]int64, len(merged))
	for _, v := range merged {
		byID[v.PartyID] = v.Votes
	}
	total := totalCast
	if total <= 0 {
		total = sumVotes(merged)
	}

	out := make([]PartyVoteSummary, 0, len(parties)+len(merged))
	seen := make(map[string]bool, len(parties))
	for _, p := range parties {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, PartyVoteSummary{
			PartyID: p.ID, Name: p.Name, Color: p.Color,
			Votes: byID[p.ID], Percentage: Percentage(byID[p.ID], total),
		})
	}
	for _, v := range merged {
		if seen[v.PartyID] {
			continue
		}
		seen[v.PartyID] = true
		out = append(out, PartyVoteSummary{
			PartyID: v.PartyID, Name: v.PartyID,
			Votes: v.Votes, Percentage: Percentage(v.Votes, total),
		})
	}

	return out
}

// zeroSeats returns a seat map with every known party at zero.
func zeroSeats(parties []Party, votes []PartyVote) map[string]int {
	out := make(map[string]int, len(parties)+len(votes))
	for _, p := range parties {
		out[p.ID] = 0
	}
	for _, v := range votes {
		if v.PartyID != "" {
			out[v.PartyID] = 0
		}
	}

	return out
}
