package gomel_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "gitlab.com/alephledger/election-go/pkg/gomel"
)

var _ = Describe("Hash", func() {
	var h, k Hash

	BeforeEach(func() {
		h = Hash{}
		k = Hash{}
	})

	Describe("LessThan", func() {
		It("should compare lexicographically", func() {
			h[0], k[0] = 1, 2
			h[1], k[1] = 9, 0
			Expect(h.LessThan(&k)).To(BeTrue())
			Expect(k.LessThan(&h)).To(BeFalse())
		})
		It("should not consider equal hashes smaller", func() {
			h[31], k[31] = 5, 5
			Expect(h.LessThan(&k)).To(BeFalse())
			Expect(k.LessThan(&h)).To(BeFalse())
		})
		It("should decide on the last byte", func() {
			h[31], k[31] = 4, 5
			Expect(h.LessThan(&k)).To(BeTrue())
		})
	})

	Describe("SortHashes", func() {
		It("should sort in ascending order", func() {
			hashes := make([]*Hash, 5)
			for i, b := range []byte{3, 0, 4, 1, 2} {
				hashes[i] = &Hash{b}
			}
			SortHashes(hashes)
			for i, hash := range hashes {
				Expect(hash[0]).To(BeEquivalentTo(i))
			}
		})
	})

	Describe("SameHash", func() {
		It("should handle nil hashes", func() {
			Expect(SameHash(nil, nil)).To(BeTrue())
			Expect(SameHash(&h, nil)).To(BeFalse())
			Expect(SameHash(nil, &h)).To(BeFalse())
		})
		It("should compare values, not pointers", func() {
			h[3], k[3] = 7, 7
			Expect(SameHash(&h, &k)).To(BeTrue())
			k[4] = 1
			Expect(SameHash(&h, &k)).To(BeFalse())
		})
	})

	Describe("CombineHashes", func() {
		It("should treat missing hashes as zero hashes", func() {
			Expect(CombineHashes([]*Hash{&h, nil})).To(Equal(CombineHashes([]*Hash{&ZeroHash, &ZeroHash})))
		})
		It("should depend on the order", func() {
			k[0] = 1
			Expect(CombineHashes([]*Hash{&h, &k})).NotTo(Equal(CombineHashes([]*Hash{&k, &h})))
		})
	})
})
