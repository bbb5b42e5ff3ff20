package dag

import (
	"gitlab.com/alephledger/election-go/pkg/gomel"
)

// UnitChecker is a function that performs a check on a unit before it is added to the index.
// It gets the committee size and the units already present.
type UnitChecker func(u gomel.Unit, nProc uint16, units gomel.Units) error

// BasicCorrectness checks that the unit was created inside the committee
// and that it has a parent slot for every process.
func BasicCorrectness(u gomel.Unit, nProc uint16, _ gomel.Units) error {
	if u.Creator() >= nProc {
		return gomel.NewDataError("creator outside of the committee")
	}
	if len(u.Parents()) != int(nProc) {
		return gomel.NewDataError("wrong number of parent slots")
	}
	if u.Round() < 0 {
		return gomel.NewDataError("negative round")
	}
	if u.Round() == 0 && gomel.ParentCount(u) != 0 {
		return gomel.NewDataError("unit of round 0 with parents")
	}
	return nil
}

// ParentConsistency checks that all the parents are present, that every parent sits in its creator's slot,
// and that parents come from the previous round.
func ParentConsistency(u gomel.Unit, _ uint16, units gomel.Units) error {
	unknown := 0
	for i, h := range u.Parents() {
		if h == nil {
			continue
		}
		parent := units.Get(h)
		if parent == nil {
			unknown++
			continue
		}
		if int(parent.Creator()) != i {
			return gomel.NewDataError("parent in a wrong slot")
		}
		if parent.Round() != u.Round()-1 {
			return gomel.NewDataError("parent not from the previous round")
		}
	}
	if unknown > 0 {
		return gomel.NewUnknownParents(unknown)
	}
	return nil
}

// NoForks checks that the creator of the unit has not produced a different unit in the same round.
func NoForks(u gomel.Unit, _ uint16, units gomel.Units) error {
	for _, h := range units.InRound(u.Round()) {
		if v := units.Get(h); v != nil && v.Creator() == u.Creator() {
			return gomel.NewDataError("fork: creator already has a unit in this round")
		}
	}
	return nil
}

// ParentQuorum checks that the unit has parents from at least a threshold of processes.
// It is not among the default checks, the election asserts it on its own.
func ParentQuorum(u gomel.Unit, nProc uint16, _ gomel.Units) error {
	if u.Round() == 0 {
		return nil
	}
	if !gomel.IsQuorum(nProc, uint16(gomel.ParentCount(u))) {
		return gomel.NewDataError("not enough parents")
	}
	return nil
}
