package tests

import (
	"math/rand"

	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/unit"
)

// RandomDag creates units of rounds 0..maxRound for a committee of nProc processes.
// Every process creates a unit in every round, citing its own previous unit and a random set of other units
// of the previous round, so that every unit has parents from at least a threshold of processes.
// The result is ordered by rounds.
func RandomDag(nProc uint16, maxRound int, rnd *rand.Rand) []gomel.Unit {
	threshold := int(gomel.Threshold(nProc))
	var result []gomel.Unit
	previous := make([]*gomel.Hash, nProc)
	for round := 0; round <= maxRound; round++ {
		current := make([]*gomel.Hash, nProc)
		for creator := uint16(0); creator < nProc; creator++ {
			parents := make([]*gomel.Hash, nProc)
			if round > 0 {
				parents[creator] = previous[creator]
				nParents := threshold + rnd.Intn(int(nProc)-threshold+1)
				count := 1
				for _, pid := range rnd.Perm(int(nProc)) {
					if count >= nParents {
						break
					}
					if uint16(pid) == creator {
						continue
					}
					parents[pid] = previous[pid]
					count++
				}
			}
			u := unit.New(creator, round, parents, nil)
			current[creator] = u.Hash()
			result = append(result, u)
		}
		previous = current
	}
	return result
}

// RandomTopologicalOrder returns the given units shuffled so that every unit comes after all its parents.
// Additionally, a unit of round R only appears once all the units of rounds up to R-lag-1 are already out,
// so no round gets left behind by more than lag rounds. A negative lag disables that restriction.
func RandomTopologicalOrder(units []gomel.Unit, lag int, rnd *rand.Rand) []gomel.Unit {
	placed := make(map[gomel.Hash]bool)
	remaining := append([]gomel.Unit(nil), units...)
	missing := make(map[int]int)
	for _, u := range units {
		missing[u.Round()]++
	}
	// the lowest round with units not placed yet
	lowest := 0
	result := make([]gomel.Unit, 0, len(units))
	for len(remaining) > 0 {
		for missing[lowest] == 0 {
			lowest++
		}
		var ready []int
		for i, u := range remaining {
			if lag >= 0 && u.Round()-lag-1 >= lowest {
				continue
			}
			ok := true
			for _, p := range u.Parents() {
				if p != nil && !placed[*p] {
					ok = false
					break
				}
			}
			if ok {
				ready = append(ready, i)
			}
		}
		i := ready[rnd.Intn(len(ready))]
		u := remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
		placed[*u.Hash()] = true
		missing[u.Round()]--
		result = append(result, u)
	}
	return result
}
