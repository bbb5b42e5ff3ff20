// Package linear implements the election of heads of consecutive rounds of the dag.
//
// The head of a round is elected by virtual voting of the units above it, with a deterministic common vote
// used whenever the votes of the parents disagree. The heads are what the linear order of units is later built around.
package linear

import (
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/election-go/pkg/config"
	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/logging"
)

// Head is the unit elected for a round.
type Head struct {
	Round int
	Hash  *gomel.Hash
	// Number of candidates of the round eliminated before the head.
	Eliminated int
}

// Extender owns a dag and elects heads of consecutive rounds as units are added to it.
// It is not safe for concurrent use.
type Extender struct {
	units      *dag.Units
	round      int
	election   *RoundElection
	eliminated int
	metrics    *Metrics
	log        zerolog.Logger
}

// NewExtender constructs an extender electing heads starting with params.FirstRound, on an empty dag for params.NProc processes.
// Metrics can be nil.
func NewExtender(params config.Params, log zerolog.Logger, metrics *Metrics) *Extender {
	units := dag.New(params.NProc)
	// Units without enough parents would break the voting, so they are refused up front.
	units.AddCheck(dag.ParentQuorum)
	metrics.round(params.FirstRound)
	return &Extender{
		units:   units,
		round:   params.FirstRound,
		metrics: metrics,
		log:     log.With().Int(logging.Service, logging.ElectionService).Logger(),
	}
}

// Units returns the dag the extender works on.
func (ext *Extender) Units() *dag.Units {
	return ext.units
}

// NextRound returns the round whose head is going to be elected next.
func (ext *Extender) NextRound() int {
	return ext.round
}

// AddUnit puts the unit in the dag and feeds it to the elections.
// Returns the heads elected thanks to this unit, for consecutive rounds, possibly none.
func (ext *Extender) AddUnit(u gomel.Unit) ([]Head, error) {
	err := ext.units.Add(u)
	ext.metrics.unitAdded(err)
	logging.AddingError(err, u, ext.log)
	if err != nil {
		return nil, err
	}
	var heads []Head
	if ext.election != nil {
		head, elected := ext.consume(ext.election.AddVoter(u.Hash(), ext.units))
		if !elected {
			return nil, nil
		}
		heads = append(heads, head)
	}
	return append(heads, ext.electAvailable()...), nil
}

// electAvailable starts elections for consecutive rounds for as long as they get decided right away.
func (ext *Extender) electAvailable() []Head {
	var heads []Head
	for ext.election == nil {
		result, err := ForRound(ext.round, ext.units, ext.log)
		if err != nil {
			return heads
		}
		head, elected := ext.consume(result)
		if !elected {
			return heads
		}
		heads = append(heads, head)
	}
	return heads
}

func (ext *Extender) consume(result Result) (Head, bool) {
	ext.metrics.eliminated(result.Eliminated() - ext.eliminated)
	ext.eliminated = result.Eliminated()
	if election, pending := result.Pending(); pending {
		ext.election = election
		return Head{}, false
	}
	hash, _ := result.Elected()
	head := Head{Round: result.Round(), Hash: hash, Eliminated: result.Eliminated()}
	ext.election = nil
	ext.eliminated = 0
	ext.round++
	ext.metrics.elected(ext.round)
	return head, true
}
