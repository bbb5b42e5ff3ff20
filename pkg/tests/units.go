// Package tests contains helpers for building dags in tests.
//
// There are constructors of units with chosen parents, a generator of random dags,
// and a mechanism for saving and loading dags from text files.
package tests

import (
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/unit"
)

// UnitByCreator returns the unit of the given round created by the given process, or nil if there is none.
func UnitByCreator(units gomel.Units, creator uint16, round int) gomel.Unit {
	for _, h := range units.InRound(round) {
		if u := units.Get(h); u != nil && u.Creator() == creator {
			return u
		}
	}
	return nil
}

// UnitWithParents constructs a unit whose parents are the units of the previous round created by parentCreators.
// The parents are looked up in units, the ones that are missing are skipped.
func UnitWithParents(creator uint16, round int, parentCreators []uint16, nProc uint16, units gomel.Units) gomel.Unit {
	parents := make([]*gomel.Hash, nProc)
	if round > 0 {
		for _, pid := range parentCreators {
			if p := UnitByCreator(units, pid, round-1); p != nil {
				parents[pid] = p.Hash()
			}
		}
	}
	return unit.New(creator, round, parents, nil)
}

// UnitWithAllParents constructs a unit having as parents all the units of the previous round present in units.
func UnitWithAllParents(creator uint16, round int, nProc uint16, units gomel.Units) gomel.Unit {
	return UnitWithParents(creator, round, AllProcesses(nProc), nProc, units)
}

// AllProcesses returns the ids of all the processes in a committee of the given size.
func AllProcesses(nProc uint16) []uint16 {
	result := make([]uint16, nProc)
	for i := range result {
		result[i] = uint16(i)
	}
	return result
}

// Adder is anything units can be added to.
type Adder interface {
	Add(gomel.Unit) error
}

// FillRounds adds to the dag, for every round in [from, to], units of all the given creators citing each other.
// Returns the first error encountered.
func FillRounds(dag Adder, units gomel.Units, nProc uint16, creators []uint16, from, to int) error {
	for round := from; round <= to; round++ {
		layer := make([]gomel.Unit, 0, len(creators))
		for _, creator := range creators {
			layer = append(layer, UnitWithParents(creator, round, creators, nProc, units))
		}
		for _, u := range layer {
			if err := dag.Add(u); err != nil {
				return err
			}
		}
	}
	return nil
}
