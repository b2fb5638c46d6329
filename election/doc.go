// Package election turns raw vote tallies into seat outcomes.
//
// Three families of systems are supported and selected by System:
//
//   - Plurality (fptp, two-round, electoral-college, sntv, block-vote,
//     plurality-mmd): the SeatsToFill candidates with the most votes win.
//   - Party-list PR (party-list-pr): party totals are allocated seats with a
//     highest-averages method (D'Hondt or Sainte-Laguë) and each party fills
//     its seats from its ordered list.
//   - MMP (mmp): constituency seats go by plurality; each party's list seats
//     top its constituency wins up to its proportional entitlement over all
//     seats, never below zero. No overhang seats are added.
//
// Party totals for proportional systems come from the tally's PartyVotes;
// MMP next tries the summed candidate votes; both finally synthesize totals
// from each party's popularity with exact largest-remainder rounding.
//
// Quotients are compared by integer cross-multiplication so allocation is
// exact; ties go to the party with more votes, then to the one listed first.
// Percentages are computed in decimal and rounded to two places.
//
// Nothing here returns an error: unknown systems fall back to plurality with
// a logged warning, and zero seats or zero votes produce all-zero summaries.
package election
