package gomel

import (
	"bytes"
	"encoding/base64"
	"sort"

	"golang.org/x/crypto/sha3"
)

// HashLength is the size of hashes of units.
const HashLength = 32

// Hash is a type storing hash values, usually used to identify units.
type Hash [HashLength]byte

// Short returns a shortened version of the hash for easy viewing.
func (h *Hash) Short() string {
	return base64.StdEncoding.EncodeToString(h[:8])
}

// LessThan checks if h is less than k in lexicographic order.
// This is the order in which candidates for a head are considered, so every process has to agree on it.
func (h *Hash) LessThan(k *Hash) bool {
	for i := 0; i < len(h); i++ {
		if h[i] < k[i] {
			return true
		} else if h[i] > k[i] {
			return false
		}
	}
	return false
}

// SortHashes sorts the given slice of hashes in ascending order, in place.
func SortHashes(hashes []*Hash) {
	sort.Slice(hashes, func(i, j int) bool {
		return hashes[i].LessThan(hashes[j])
	})
}

// SameHash checks whether two possibly nil hashes are equal.
func SameHash(h, k *Hash) bool {
	if h == nil || k == nil {
		return h == k
	}
	return *h == *k
}

// ZeroHash is a hash containing zeros at all 32 positions.
var ZeroHash Hash

// CombineHashes computes hash from sequence of hashes.
// Missing hashes are replaced with ZeroHash.
func CombineHashes(hashes []*Hash) *Hash {
	var (
		result Hash
		data   bytes.Buffer
	)
	for _, h := range hashes {
		if h != nil {
			data.Write(h[:])
		} else {
			data.Write(ZeroHash[:])
		}
	}
	sha3.ShakeSum128(result[:], data.Bytes())
	return &result
}

// ToHashes converts a list of units to a list of hashes.
func ToHashes(units []Unit) []*Hash {
	result := make([]*Hash, len(units))
	for i, u := range units {
		if u != nil {
			result[i] = u.Hash()
		}
	}
	return result
}
