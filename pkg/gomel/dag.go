// Package gomel defines the interfaces and basic types shared by all the components electing heads of the dag.
//
// The main components defined in this package are:
//  1. The unit, representing the information produced by a single process in a single round of the protocol.
//  2. The read-only view of the dag index that the election is computed against.
//  3. The quorum arithmetic used throughout the voting.
package gomel

// Units is a read-only view of the dag index.
//
// Implementations must be causally complete: whenever a unit is present, all its parents are present as well.
// Round enumeration returns a stable set for the duration of a single call on the election.
type Units interface {
	// HighestRound returns the highest round containing at least one unit, or -1 if there are no units at all.
	HighestRound() int
	// InRound returns hashes of all the units of the given round. The result is empty if there are none.
	InRound(int) []*Hash
	// Get returns the unit with the given hash, or nil if it is not present.
	Get(*Hash) Unit
}

// Threshold is the minimal number of processes forming a Byzantine quorum amongst nProcesses, i.e. floor(2N/3)+1.
func Threshold(nProcesses uint16) uint16 {
	return 2*nProcesses/3 + 1
}

// IsQuorum checks if subsetSize processes reach the threshold amongst all nProcesses.
func IsQuorum(nProcesses, subsetSize uint16) bool {
	return subsetSize >= Threshold(nProcesses)
}

// MinimalTrusted is the minimal size of a subset of nProcesses, that guarantees
// that the subset contains at least one honest process.
func MinimalTrusted(nProcesses uint16) uint16 {
	return nProcesses/3 + 1
}
