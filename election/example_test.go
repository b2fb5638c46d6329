package election_test

import (
	"fmt"

	"github.com/katalvlaran/polimap/election"
)

func ExampleHighestAverages() {
	votes := []election.PartyVote{{PartyID: "A", Votes: 600}, {PartyID: "B", Votes: 300}, {PartyID: "C", Votes: 100}}
	seats := election.HighestAverages(votes, 10, election.DHondt, 0)
	for _, v := range votes {
		fmt.Println(v.PartyID, seats[v.PartyID])
	}
	// Output:
	// A 6
	// B 3
	// C 1
}

func ExampleProcess() {
	tally := election.Tally{Candidates: []election.Candidate{
		{ID: "1", Name: "Ames", Votes: 1000},
		{ID: "2", Name: "Bryce", Votes: 800},
		{ID: "3", Name: "Cole", Votes: 1200},
	}}
	out := election.Process(election.Config{System: election.FPTP, SeatsToFill: 1}, tally, nil)
	margin, _ := out.Margin()
	fmt.Println(out.Winners[0].Candidate.Name, margin)
	// Output:
	// Cole 200
}
