package election

import (
	"log/slog"
	"sort"
)

// Process tabulates one contest under cfg.System.
//
// Unknown systems are logged at Warn level and processed as FPTP-style
// plurality; the returned Outcome then reports System = FPTP.
func Process(cfg Config, tally Tally, parties []Party, opts ...Option) Outcome {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	sys, ok := ParseSystem(string(cfg.System))
	if !ok {
		o.logger.Warn("election: unknown electoral system, using plurality",
			"system", string(cfg.System))
		sys = FPTP
	}
	cfg.System = sys
	cfg.Method = ParseMethod(string(cfg.Method))

	switch sys {
	case PartyListPR:
		return processPartyList(cfg, tally, parties, o.logger)
	case MMP:
		return processMMP(cfg, tally, parties, o.logger)
	default:
		return processPlurality(cfg, tally, parties)
	}
}

// rank orders candidates by votes, most first, keeping input order on ties.
func rank(cands []Candidate) []Candidate {
	out := append([]Candidate(nil), cands...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Votes > out[j].Votes })

	return out
}

func seatKindFor(sys System) SeatKind {
	switch sys {
	case TwoRound, ElectoralCollege:
		return SeatOffice
	case PartyListPR:
		return SeatList
	default:
		return SeatConstituency
	}
}

func processPlurality(cfg Config, tally Tally, parties []Party) Outcome {
	ranking := rank(tally.Candidates)
	seats := max(cfg.SeatsToFill, 0)
	if seats > len(ranking) {
		seats = len(ranking)
	}

	out := Outcome{
		System:     cfg.System,
		Winners:    make([]Winner, 0, seats),
		PartySeats: zeroSeats(parties, candidateVotesByParty(tally.Candidates)),
		Ranking:    ranking,
	}
	kind := seatKindFor(cfg.System)
	for _, c := range ranking[:seats] {
		out.Winners = append(out.Winners, Winner{Candidate: c, Seat: kind})
		if c.PartyID != "" {
			out.PartySeats[c.PartyID]++
		}
	}
	out.PartyVotes = summarize(candidateVotesByParty(tally.Candidates), parties, tally.TotalVotesCast)

	return out
}

// listVotes picks the party totals for proportional allocation: explicit
// party votes, then (if allowed) summed candidate votes, then synthesis from
// popularity over the votes cast.
func listVotes(tally Tally, parties []Party, useCandidates bool, logger *slog.Logger) []PartyVote {
	if sumVotes(tally.PartyVotes) > 0 {
		return mergeVotes(tally.PartyVotes)
	}
	if useCandidates {
		if pv := candidateVotesByParty(tally.Candidates); sumVotes(pv) > 0 {
			return pv
		}
	}

	total := tally.TotalVotesCast
	if total <= 0 {
		for _, c := range tally.Candidates {
			total += c.Votes
		}
	}
	logger.Debug("election: synthesizing party votes from popularity",
		"parties", len(parties), "total", total)

	return SynthesizePartyVotes(parties, total)
}

// fillFromList appends up to n list winners of party, skipping taken IDs.
func fillFromList(winners []Winner, list []Candidate, n int, taken map[string]bool) []Winner {
	for _, c := range list {
		if n == 0 {
			break
		}
		if taken[c.ID] {
			continue
		}
		taken[c.ID] = true
		winners = append(winners, Winner{Candidate: c, Seat: SeatList})
		n--
	}

	return winners
}

// partyList returns the party's ordered list; without a configured list the
// party's candidates from the tally are used, most votes first.
func partyList(cfg Config, tally Tally, party string) []Candidate {
	if l, ok := cfg.PartyLists[party]; ok {
		return l
	}
	var l []Candidate
	for _, c := range rank(tally.Candidates) {
		if c.PartyID == party {
			l = append(l, c)
		}
	}

	return l
}

// partyOrder lists party IDs of votes in order, then any roster party missing.
func partyOrder(votes []PartyVote, parties []Party) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, v := range votes {
		if !seen[v.PartyID] {
			seen[v.PartyID] = true
			ids = append(ids, v.PartyID)
		}
	}
	for _, p := range parties {
		if !seen[p.ID] {
			seen[p.ID] = true
			ids = append(ids, p.ID)
		}
	}

	return ids
}

func processPartyList(cfg Config, tally Tally, parties []Party, logger *slog.Logger) Outcome {
	votes := listVotes(tally, parties, false, logger)
	alloc := HighestAverages(votes, cfg.SeatsToFill, cfg.Method, cfg.ThresholdPercent)

	out := Outcome{
		System:     cfg.System,
		Winners:    []Winner{},
		PartySeats: zeroSeats(parties, votes),
		PartyVotes: summarize(votes, parties, tally.TotalVotesCast),
	}
	taken := make(map[string]bool)
	for _, id := range partyOrder(votes, parties) {
		n := alloc[id]
		out.PartySeats[id] += n
		out.Winners = fillFromList(out.Winners, partyList(cfg, tally, id), n, taken)
	}

	return out
}

func processMMP(cfg Config, tally Tally, parties []Party, logger *slog.Logger) Outcome {
	seats := max(cfg.SeatsToFill, 0)
	constituency := min(max(cfg.ConstituencySeats, 0), seats)

	ranking := rank(tally.Candidates)
	if constituency > len(ranking) {
		constituency = len(ranking)
	}

	votes := listVotes(tally, parties, true, logger)
	out := Outcome{
		System:     cfg.System,
		Winners:    make([]Winner, 0, seats),
		PartySeats: zeroSeats(parties, votes),
		PartyVotes: summarize(votes, parties, tally.TotalVotesCast),
		Ranking:    ranking,
	}

	taken := make(map[string]bool, constituency)
	wins := make(map[string]int)
	for _, c := range ranking[:constituency] {
		out.Winners = append(out.Winners, Winner{Candidate: c, Seat: SeatConstituency})
		taken[c.ID] = true
		if c.PartyID != "" {
			wins[c.PartyID]++
			out.PartySeats[c.PartyID]++
		}
	}

	entitlement := HighestAverages(votes, seats, cfg.Method, cfg.ThresholdPercent)
	for _, id := range partyOrder(votes, parties) {
		n := max(entitlement[id]-wins[id], 0)
		if n == 0 {
			continue
		}
		out.PartySeats[id] += n
		out.Winners = fillFromList(out.Winners, partyList(cfg, tally, id), n, taken)
	}

	return out
}
