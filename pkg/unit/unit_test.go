package unit_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"gitlab.com/alephledger/election-go/pkg/gomel"
	. "gitlab.com/alephledger/election-go/pkg/unit"
)

var _ = Describe("Unit", func() {
	var parents []*gomel.Hash

	BeforeEach(func() {
		parents = make([]*gomel.Hash, 4)
		parents[0] = &gomel.Hash{1}
		parents[3] = &gomel.Hash{2}
	})

	It("should keep what it was created with", func() {
		u := New(2, 5, parents, []byte("data"))
		Expect(u.Creator()).To(BeEquivalentTo(2))
		Expect(u.Round()).To(Equal(5))
		Expect(u.Parents()).To(Equal(parents))
		Expect(u.Data()).To(Equal([]byte("data")))
	})

	It("should have a deterministic hash", func() {
		u := New(2, 5, parents, []byte("data"))
		v := New(2, 5, parents, []byte("data"))
		Expect(*u.Hash()).To(Equal(*v.Hash()))
		Expect(*u.Hash()).To(Equal(*ComputeHash(2, 5, parents, []byte("data"))))
	})

	It("should have a hash depending on every field", func() {
		u := New(2, 5, parents, []byte("data"))
		other := make([]*gomel.Hash, 4)
		other[0] = parents[0]
		Expect(*New(1, 5, parents, []byte("data")).Hash()).NotTo(Equal(*u.Hash()))
		Expect(*New(2, 4, parents, []byte("data")).Hash()).NotTo(Equal(*u.Hash()))
		Expect(*New(2, 5, other, []byte("data")).Hash()).NotTo(Equal(*u.Hash()))
		Expect(*New(2, 5, parents, []byte("atad")).Hash()).NotTo(Equal(*u.Hash()))
	})

	It("should not be affected by changes to the slices it was created from", func() {
		data := []byte("data")
		u := New(2, 5, parents, data)
		hash := *u.Hash()
		parents[0][0] = 7
		parents[1] = &gomel.Hash{3}
		data[0] = 'x'
		Expect(u.Parents()[0][0]).To(BeEquivalentTo(1))
		Expect(u.Parents()[1]).To(BeNil())
		Expect(u.Data()).To(Equal([]byte("data")))
		Expect(*u.Hash()).To(Equal(hash))
	})

	It("should refuse creators outside of the committee", func() {
		Expect(func() { New(4, 1, parents, nil) }).To(Panic())
	})

	It("should refuse negative rounds", func() {
		Expect(func() { New(0, -1, parents, nil) }).To(Panic())
	})
})
