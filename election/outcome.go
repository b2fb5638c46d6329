package election

// SeatTotal returns the number of seats awarded to parties.
func (o Outcome) SeatTotal() int {
	n := 0
	for _, s := range o.PartySeats {
		n += s
	}

	return n
}

// Majority reports whether party holds more than half of the awarded seats.
func (o Outcome) Majority(party string) bool {
	total := o.SeatTotal()

	return total > 0 && 2*o.PartySeats[party] > total
}

// Margin returns the vote gap between the last plurality winner and the
// best loser. The boolean is false without a ranked loser.
func (o Outcome) Margin() (int64, bool) {
	won := 0
	for _, w := range o.Winners {
		if w.Seat != SeatList {
			won++
		}
	}
	if won == 0 || won >= len(o.Ranking) {
		return 0, false
	}

	return o.Ranking[won-1].Votes - o.Ranking[won].Votes, true
}

// Seats returns the party's seat count (0 when unknown).
func (o Outcome) Seats(party string) int { return o.PartySeats[party] }
