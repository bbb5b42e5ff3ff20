package gomel

// Unit is a single vertex of the dag, created by one process in one round.
// Units are immutable.
type Unit interface {
	// Creator is the id of the process that created this unit.
	Creator() uint16
	// Round of this unit in the dag.
	Round() int
	// Hash value of this unit.
	Hash() *Hash
	// Parents returns, for every process in the committee, the hash of the parent created by that process,
	// or nil if there is no such parent. The length of the slice is the size of the committee.
	Parents() []*Hash
	// Data is the slice of data contained in the unit.
	Data() []byte
}

// Nickname of a unit is a short name, for the purpose of quick identification by a human.
func Nickname(u Unit) string {
	return u.Hash().Short()
}

// NProc returns the size of the committee the unit was created in.
func NProc(u Unit) uint16 {
	return uint16(len(u.Parents()))
}

// ParentCount returns the number of parents actually present in the unit.
func ParentCount(u Unit) int {
	count := 0
	for _, p := range u.Parents() {
		if p != nil {
			count++
		}
	}
	return count
}

// CitesParent checks whether u has the unit with the given hash as its parent created by the given process.
func CitesParent(u Unit, creator uint16, h *Hash) bool {
	parents := u.Parents()
	if int(creator) >= len(parents) || parents[creator] == nil {
		return false
	}
	return *parents[creator] == *h
}
