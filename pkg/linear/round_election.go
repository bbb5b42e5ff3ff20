package linear

import (
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/logging"
)

// RoundElection elects the head of a single round.
// Candidates are the units of that round, considered one by one in ascending order of their hashes,
// until one of them gets elected.
type RoundElection struct {
	round int
	// Remaining candidates, in ascending order. The current one is already removed.
	candidates []*gomel.Hash
	voting     *CandidateElection
	eliminated int
	head       *gomel.Hash
	log        zerolog.Logger
}

// Result of a round election. It is either pending, carrying the election that needs more voters,
// or elected, carrying the hash of the head.
type Result struct {
	round      int
	election   *RoundElection
	head       *gomel.Hash
	eliminated int
}

// Pending returns the election that still needs more voters, if the head is not known yet.
func (r Result) Pending() (*RoundElection, bool) {
	return r.election, r.head == nil
}

// Elected returns the hash of the head, if it was elected.
func (r Result) Elected() (*gomel.Hash, bool) {
	return r.head, r.head != nil
}

// Round returns the round the election is for.
func (r Result) Round() int {
	return r.round
}

// Eliminated returns the number of candidates eliminated so far in this round.
func (r Result) Eliminated() int {
	return r.eliminated
}

// ForRound creates a new round election. It might immediately be decided, so the result might be elected right away.
// Returns a NotReady error when it is too early to finalize the candidate list,
// i.e. the dag does not reach at least 3 rounds above the election round.
func ForRound(round int, units gomel.Units, log zerolog.Logger) (Result, error) {
	// Without a unit of round+3 we might not know about the winning candidate.
	highest := units.HighestRound()
	if highest < round+lookAhead {
		log.Debug().Int(logging.Round, round).Int(logging.Highest, highest).Msg(logging.ElectionNotReady)
		return Result{}, gomel.NewNotReady(round, highest)
	}
	// Units of this round that are still missing are guaranteed to get consistently eliminated.
	candidates := units.InRound(round)
	gomel.SortHashes(candidates)
	re := &RoundElection{
		round:      round,
		candidates: candidates,
		log:        log,
	}
	re.log.Debug().Int(logging.Round, round).Int(logging.Size, len(candidates)).Msg(logging.ElectionStarted)
	re.nextCandidate(units)
	return re.handle(re.voting.ComputeVotes(units), units), nil
}

// Round returns the round this election is for.
func (re *RoundElection) Round() int {
	return re.round
}

// Candidate returns the hash of the candidate currently voted on.
func (re *RoundElection) Candidate() *gomel.Hash {
	return re.voting.Candidate()
}

// Remaining returns the number of candidates waiting after the current one.
func (re *RoundElection) Remaining() int {
	return len(re.candidates)
}

// AddVoter adds a single unit to the election.
// If this eliminates the current candidate, the next ones are tried against all the units already present.
func (re *RoundElection) AddVoter(voter *gomel.Hash, units gomel.Units) Result {
	if re.head != nil {
		return re.result()
	}
	return re.handle(re.voting.AddVoter(voter, units), units)
}

func (re *RoundElection) nextCandidate(units gomel.Units) {
	if len(re.candidates) == 0 {
		panic("all the candidates got eliminated")
	}
	hash := re.candidates[0]
	re.candidates = re.candidates[1:]
	candidate := units.Get(hash)
	if candidate == nil {
		panic("candidate missing from the dag")
	}
	re.voting = NewCandidateElection(candidate)
}

func (re *RoundElection) handle(decision Decision, units gomel.Units) Result {
	for decision == Eliminated {
		re.eliminated++
		re.log.Debug().Int(logging.Round, re.round).Str(logging.Candidate, re.voting.Candidate().Short()).Msg(logging.CandidateEliminated)
		re.nextCandidate(units)
		decision = re.voting.ComputeVotes(units)
	}
	if decision == Elected {
		re.head = re.voting.Candidate()
		re.log.Info().Int(logging.Round, re.round).Str(logging.Hash, re.head.Short()).Int(logging.Size, re.eliminated).Msg(logging.HeadElected)
	}
	return re.result()
}

func (re *RoundElection) result() Result {
	if re.head != nil {
		return Result{round: re.round, head: re.head, eliminated: re.eliminated}
	}
	return Result{round: re.round, election: re, eliminated: re.eliminated}
}
