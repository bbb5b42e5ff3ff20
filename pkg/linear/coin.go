package linear

const (
	// firstDecidingRound is the lowest relative round at which a unit can decide the fate of a candidate.
	firstDecidingRound = 3
	// lookAhead is how many rounds above the election round have to be present before the candidate list is final.
	lookAhead = 3
)

// commonVote is the default vote of units in the given relative round, used when their parents disagree.
// It is true, false, true for relative rounds 2, 3, 4, and then alternates starting from true in round 5.
// The earliest a head can be elected is thus relative round 4, and the earliest a candidate can be eliminated is round 3.
func commonVote(relativeRound int) bool {
	if relativeRound < 2 {
		panic("common vote asked on too low relative round")
	}
	if relativeRound == 3 {
		return false
	}
	if relativeRound <= 4 {
		return true
	}
	return relativeRound%2 == 1
}
