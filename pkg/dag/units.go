// Package dag implements an in-memory index of units, answering the queries the head election asks.
package dag

import (
	"github.com/algorand/go-deadlock"
	"github.com/google/btree"

	"gitlab.com/alephledger/election-go/pkg/gomel"
)

const roundTreeDegree = 8

// roundBucket holds the hashes of all units of a single round, in insertion order.
type roundBucket struct {
	round  int
	hashes []*gomel.Hash
}

func (rb *roundBucket) less(other *roundBucket) bool {
	return rb.round < other.round
}

// InsertHook is a function that performs some additional action on a unit after it is inserted.
type InsertHook func(gomel.Unit)

// Units is a causally complete store of units created by a committee of a fixed size.
// It is safe for concurrent readers and a single writer.
type Units struct {
	mx         deadlock.RWMutex
	nProc      uint16
	byHash     map[gomel.Hash]gomel.Unit
	rounds     *btree.BTreeG[*roundBucket]
	checks     []UnitChecker
	postInsert []InsertHook
}

// New constructs an empty index for the given committee size, checking every added unit with the default checks.
func New(nProc uint16) *Units {
	return &Units{
		nProc:  nProc,
		byHash: make(map[gomel.Hash]gomel.Unit),
		rounds: btree.NewG(roundTreeDegree, (*roundBucket).less),
		checks: []UnitChecker{BasicCorrectness, ParentConsistency, NoForks},
	}
}

// NProc returns the size of the committee.
func (units *Units) NProc() uint16 {
	return units.nProc
}

// AddCheck extends the list of UnitCheckers that are run on every added unit.
func (units *Units) AddCheck(check UnitChecker) {
	units.mx.Lock()
	defer units.mx.Unlock()
	units.checks = append(units.checks, check)
}

// AfterInsert adds an action to perform after a unit is inserted.
func (units *Units) AfterInsert(hook InsertHook) {
	units.mx.Lock()
	defer units.mx.Unlock()
	units.postInsert = append(units.postInsert, hook)
}

// Add puts the unit into the index, after running all the checks on it.
// A unit can only be added after all its parents.
func (units *Units) Add(u gomel.Unit) error {
	units.mx.Lock()
	if _, ok := units.byHash[*u.Hash()]; ok {
		units.mx.Unlock()
		return gomel.NewDuplicateUnit(u)
	}
	for _, check := range units.checks {
		if err := check(u, units.nProc, heldView{units}); err != nil {
			units.mx.Unlock()
			return err
		}
	}
	units.byHash[*u.Hash()] = u
	bucket, ok := units.rounds.Get(&roundBucket{round: u.Round()})
	if !ok {
		bucket = &roundBucket{round: u.Round()}
		units.rounds.ReplaceOrInsert(bucket)
	}
	bucket.hashes = append(bucket.hashes, u.Hash())
	hooks := units.postInsert
	units.mx.Unlock()

	for _, hook := range hooks {
		hook(u)
	}
	return nil
}

// Get returns the unit with the given hash, or nil if it is not present.
func (units *Units) Get(h *gomel.Hash) gomel.Unit {
	units.mx.RLock()
	defer units.mx.RUnlock()
	return units.get(h)
}

func (units *Units) get(h *gomel.Hash) gomel.Unit {
	if h == nil {
		return nil
	}
	return units.byHash[*h]
}

// InRound returns hashes of all the units of the given round, in the order they were added.
func (units *Units) InRound(round int) []*gomel.Hash {
	units.mx.RLock()
	defer units.mx.RUnlock()
	return units.inRound(round)
}

func (units *Units) inRound(round int) []*gomel.Hash {
	bucket, ok := units.rounds.Get(&roundBucket{round: round})
	if !ok {
		return nil
	}
	result := make([]*gomel.Hash, len(bucket.hashes))
	copy(result, bucket.hashes)
	return result
}

// HighestRound returns the highest round containing any unit, or -1 for an empty index.
func (units *Units) HighestRound() int {
	units.mx.RLock()
	defer units.mx.RUnlock()
	return units.highestRound()
}

func (units *Units) highestRound() int {
	bucket, ok := units.rounds.Max()
	if !ok {
		return -1
	}
	return bucket.round
}

// Size returns the number of units in the index.
func (units *Units) Size() int {
	units.mx.RLock()
	defer units.mx.RUnlock()
	return len(units.byHash)
}

// Iterate calls the given function on all the units, round by round, until it returns false.
// Units of one round are visited in the order they were added.
// The function works on a snapshot taken at the moment of the call, so it is free to query the index.
func (units *Units) Iterate(work func(gomel.Unit) bool) {
	units.mx.RLock()
	snapshot := make([]gomel.Unit, 0, len(units.byHash))
	units.rounds.Ascend(func(bucket *roundBucket) bool {
		for _, h := range bucket.hashes {
			snapshot = append(snapshot, units.byHash[*h])
		}
		return true
	})
	units.mx.RUnlock()
	for _, u := range snapshot {
		if !work(u) {
			return
		}
	}
}

// heldView gives checks access to the index while its lock is already held by Add.
type heldView struct {
	units *Units
}

func (v heldView) HighestRound() int {
	return v.units.highestRound()
}

func (v heldView) InRound(round int) []*gomel.Hash {
	return v.units.inRound(round)
}

func (v heldView) Get(h *gomel.Hash) gomel.Unit {
	return v.units.get(h)
}
