package election

// HighestAverages allocates seats among parties by a highest-averages method.
//
// A party is eligible when it has votes and its share is at least
// thresholdPercent of the total. Each seat goes to the eligible party with
// the largest quotient votes/divisor(seats already won); quotients are
// compared exactly as a·d_b versus b·d_a. Ties go to more raw votes, then to
// the earlier entry. Repeated party IDs are summed.
//
// The result has an entry for every party in votes. It sums to seats
// whenever at least one party is eligible and seats > 0, and all-zero
// otherwise.
func HighestAverages(votes []PartyVote, seats int, method Method, thresholdPercent float64) map[string]int {
	merged := mergeVotes(votes)
	out := make(map[string]int, len(merged))
	var total int64
	for _, pv := range merged {
		out[pv.PartyID] = 0
		total += pv.Votes
	}
	if seats <= 0 || total <= 0 {
		return out
	}

	eligible := make([]PartyVote, 0, len(merged))
	for _, pv := range merged {
		if pv.Votes > 0 && float64(pv.Votes)*100 >= thresholdPercent*float64(total) {
			eligible = append(eligible, pv)
		}
	}
	if len(eligible) == 0 {
		return out
	}

	for s := 0; s < seats; s++ {
		best := 0
		for i := 1; i < len(eligible); i++ {
			if beats(eligible[i], eligible[best], out, method) {
				best = i
			}
		}
		out[eligible[best].PartyID]++
	}

	return out
}

// beats reports whether a's next quotient is strictly better than b's.
// Equal quotients fall back to raw votes; full ties keep the earlier entry.
func beats(a, b PartyVote, won map[string]int, m Method) bool {
	lhs := a.Votes * m.divisor(won[b.PartyID])
	rhs := b.Votes * m.divisor(won[a.PartyID])
	if lhs != rhs {
		return lhs > rhs
	}

	return a.Votes > b.Votes
}

// mergeVotes sums repeated party IDs, keeping first-appearance order.
func mergeVotes(votes []PartyVote) []PartyVote {
	idx := make(map[string]int, len(votes))
	out := make([]PartyVote, 0, len(votes))
	for _, pv := range votes {
		if i, ok := idx[pv.PartyID]; ok {
			out[i].Votes += pv.Votes
			continue
		}
		idx[pv.PartyID] = len(out)
		out = append(out, pv)
	}

	return out
}
