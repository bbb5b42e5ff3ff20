package linear

import (
	"gitlab.com/alephledger/election-go/pkg/gomel"
)

// vote is the outcome of asking a single unit about a candidate.
// Besides the two plain votes it can carry the decision that ends the election of the candidate.
type vote int

const (
	against vote = iota
	inFavour
	eliminate
	elect
)

func fromBool(b bool) vote {
	if b {
		return inFavour
	}
	return against
}

func (v vote) decisive() bool {
	return v == eliminate || v == elect
}

// Decision describes the state of the election of a single candidate.
type Decision int

const (
	// Undecided means more voters are needed.
	Undecided Decision = iota
	// Eliminated means the candidate will never become the head.
	Eliminated
	// Elected means the candidate is the head of its round.
	Elected
)

func (d Decision) String() string {
	switch d {
	case Eliminated:
		return "eliminated"
	case Elected:
		return "elected"
	default:
		return "undecided"
	}
}

// CandidateElection computes the votes of units on a single candidate for the head.
// The candidate eventually gets either elected or eliminated.
type CandidateElection struct {
	round    int
	creator  uint16
	hash     *gomel.Hash
	votes    map[gomel.Hash]bool
	decision Decision
}

// NewCandidateElection creates an election for the given candidate.
func NewCandidateElection(candidate gomel.Unit) *CandidateElection {
	return &CandidateElection{
		round:   candidate.Round(),
		creator: candidate.Creator(),
		hash:    candidate.Hash(),
		votes:   make(map[gomel.Hash]bool),
	}
}

// Candidate returns the hash of the unit this election is about.
func (ce *CandidateElection) Candidate() *gomel.Hash {
	return ce.hash
}

// Decision returns the current state of the election.
func (ce *CandidateElection) Decision() Decision {
	return ce.decision
}

// CachedVote returns the vote of the given unit, if it was already computed.
func (ce *CandidateElection) CachedVote(voter *gomel.Hash) (bool, bool) {
	result, ok := ce.votes[*voter]
	return result, ok
}

// AddVoter computes the vote of a single unit. This might end up electing or eliminating the candidate.
// Once the candidate is decided, further voters are ignored.
func (ce *CandidateElection) AddVoter(voter *gomel.Hash, units gomel.Units) Decision {
	if ce.decision != Undecided {
		return ce.decision
	}
	switch ce.vote(voter, units) {
	case elect:
		ce.decision = Elected
	case eliminate:
		ce.decision = Eliminated
	}
	return ce.decision
}

// ComputeVotes computes the votes of all the units above the candidate, round by round.
// This might end up electing or eliminating the candidate, in which case it stops immediately.
func (ce *CandidateElection) ComputeVotes(units gomel.Units) Decision {
	for round := ce.round + 1; round <= units.HighestRound(); round++ {
		for _, voter := range units.InRound(round) {
			if decision := ce.AddVoter(voter, units); decision != Undecided {
				return decision
			}
		}
	}
	return ce.decision
}

func (ce *CandidateElection) vote(voter *gomel.Hash, units gomel.Units) vote {
	if cached, ok := ce.votes[*voter]; ok {
		return fromBool(cached)
	}
	u := units.Get(voter)
	if u == nil {
		panic("vote requested from a unit missing from the dag")
	}
	result := ce.computeVote(u, units)
	if result.decisive() {
		return result
	}
	ce.votes[*voter] = result == inFavour
	return result
}

func (ce *CandidateElection) computeVote(voter gomel.Unit, units gomel.Units) vote {
	// Units not above the candidate never vote for it.
	if voter.Round() <= ce.round {
		return against
	}
	relativeRound := voter.Round() - ce.round
	if relativeRound == 1 {
		return fromBool(gomel.CitesParent(voter, ce.creator, ce.hash))
	}
	return ce.voteFromParents(voter.Parents(), relativeRound, units)
}

func (ce *CandidateElection) voteFromParents(parents []*gomel.Hash, relativeRound int, units gomel.Units) vote {
	threshold := gomel.Threshold(uint16(len(parents)))
	var votesFor, votesAgainst uint16
	for _, parent := range parents {
		if parent == nil {
			continue
		}
		// Units are usually added round by round, so this should only ever hit the cache.
		switch v := ce.vote(parent, units); v {
		case inFavour:
			votesFor++
		case against:
			votesAgainst++
		default:
			return v
		}
	}
	if votesFor+votesAgainst < threshold {
		panic("parents of a voter do not reach the threshold")
	}
	common := commonVote(relativeRound)
	if relativeRound >= firstDecidingRound {
		if common && votesFor >= threshold {
			return elect
		}
		if !common && votesAgainst >= threshold {
			return eliminate
		}
	}
	switch {
	case votesFor == 0:
		return against
	case votesAgainst == 0:
		return inFavour
	}
	return fromBool(common)
}
