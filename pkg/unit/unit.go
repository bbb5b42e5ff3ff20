// Package unit implements the immutable units the head election works on.
package unit

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"gitlab.com/alephledger/election-go/pkg/gomel"
)

type unit struct {
	creator uint16
	round   int
	parents []*gomel.Hash
	data    []byte
	hash    gomel.Hash
}

// New constructs a unit created by the given process in the given round.
// The slice of parents has one entry per process in the committee, nil for a missing parent.
// Both slices are copied, so the caller is free to reuse them.
func New(creator uint16, round int, parents []*gomel.Hash, data []byte) gomel.Unit {
	if int(creator) >= len(parents) {
		panic("creator outside of the committee")
	}
	if round < 0 {
		panic("negative round")
	}
	u := &unit{
		creator: creator,
		round:   round,
		parents: make([]*gomel.Hash, len(parents)),
		data:    append([]byte(nil), data...),
	}
	for i, p := range parents {
		if p != nil {
			h := *p
			u.parents[i] = &h
		}
	}
	u.hash = *ComputeHash(creator, round, u.parents, u.data)
	return u
}

// Creator of the unit.
func (u *unit) Creator() uint16 {
	return u.creator
}

// Round of the unit.
func (u *unit) Round() int {
	return u.round
}

// Hash of the unit.
func (u *unit) Hash() *gomel.Hash {
	return &u.hash
}

// Parents of the unit, one entry per process.
func (u *unit) Parents() []*gomel.Hash {
	return u.parents
}

// Data embedded in the unit.
func (u *unit) Data() []byte {
	return u.data
}

// ComputeHash calculates the value of unit's hash based on provided data.
func ComputeHash(creator uint16, round int, parents []*gomel.Hash, data []byte) *gomel.Hash {
	var buf bytes.Buffer
	header := make([]byte, 2+4+2)
	binary.LittleEndian.PutUint16(header[0:], creator)
	binary.LittleEndian.PutUint32(header[2:], uint32(round))
	binary.LittleEndian.PutUint16(header[6:], uint16(len(parents)))
	buf.Write(header)
	buf.Write(gomel.CombineHashes(parents)[:])
	buf.Write(data)
	result := &gomel.Hash{}
	sha3.ShakeSum128(result[:], buf.Bytes())
	return result
}
