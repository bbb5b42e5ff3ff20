package tests_test

import (
	"bytes"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	. "gitlab.com/alephledger/election-go/pkg/tests"
)

var _ = Describe("Dag files", func() {
	var (
		units *dag.Units
		read  []gomel.Unit
		err   error
	)

	Describe("ReadDag", func() {
		Context("on a very regular dag", func() {
			It("should read all the units", func() {
				units, read, err = CreateDagFromTestFile("../testdata/dags/4/regular.txt")
				Expect(err).NotTo(HaveOccurred())
				Expect(units.NProc()).To(BeEquivalentTo(4))
				Expect(read).To(HaveLen(40))
				Expect(units.Size()).To(Equal(40))
				Expect(units.HighestRound()).To(Equal(9))
				for _, u := range read {
					if u.Round() > 0 {
						Expect(gomel.ParentCount(u)).To(Equal(4))
					}
				}
			})
		})
		Context("on a random dag with comments", func() {
			It("should read a committee of 7", func() {
				units, _, err = CreateDagFromTestFile("../testdata/dags/7/random.txt")
				Expect(err).NotTo(HaveOccurred())
				Expect(units.NProc()).To(BeEquivalentTo(7))
				for round := 0; round <= units.HighestRound(); round++ {
					Expect(units.InRound(round)).To(HaveLen(7))
				}
			})
		})
		Context("on a missing file", func() {
			It("should return an error", func() {
				_, _, err = CreateDagFromTestFile("blabla")
				Expect(err).To(HaveOccurred())
			})
		})
		Context("on trash", func() {
			It("should return an error", func() {
				_, _, err = ReadDag(strings.NewReader("4\nthis is not a dag\n"))
				Expect(err).To(HaveOccurred())
			})
		})
		Context("on an empty committee", func() {
			It("should return an error", func() {
				_, _, err = ReadDag(strings.NewReader("0\n"))
				Expect(err).To(BeAssignableToTypeOf(&gomel.DataError{}))
			})
		})
		Context("on a unit citing a unit that was not defined", func() {
			It("should return an error", func() {
				_, _, err = ReadDag(strings.NewReader("4\n0-0\n0-1 0-0 1-0\n"))
				Expect(err).To(BeAssignableToTypeOf(&gomel.DataError{}))
			})
		})
		Context("on a creator outside of the committee", func() {
			It("should return an error", func() {
				_, _, err = ReadDag(strings.NewReader("4\n5-0\n"))
				Expect(err).To(BeAssignableToTypeOf(&gomel.DataError{}))
			})
		})
	})

	Describe("WriteDag", func() {
		It("should write a dag that reads back the same", func() {
			units = dag.New(5)
			for _, u := range RandomDag(5, 6, rand.New(rand.NewSource(13))) {
				Expect(units.Add(u)).To(Succeed())
			}
			var buf bytes.Buffer
			Expect(WriteDag(&buf, units)).To(Succeed())
			again, read, err := ReadDag(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Size()).To(Equal(units.Size()))
			for _, u := range read {
				Expect(units.Get(u.Hash())).NotTo(BeNil())
			}
		})
	})
})

var _ = Describe("Generators", func() {
	var rnd *rand.Rand

	BeforeEach(func() {
		rnd = rand.New(rand.NewSource(7))
	})

	It("should give every unit a quorum of parents", func() {
		for _, u := range RandomDag(7, 5, rnd) {
			if u.Round() > 0 {
				Expect(gomel.IsQuorum(7, uint16(gomel.ParentCount(u)))).To(BeTrue())
				Expect(u.Parents()[u.Creator()]).NotTo(BeNil())
			}
		}
	})

	It("should shuffle units keeping parents first and no round lagging behind", func() {
		all := RandomDag(4, 6, rnd)
		placed := map[gomel.Hash]bool{}
		missing := map[int]int{}
		for _, u := range all {
			missing[u.Round()]++
		}
		for _, u := range RandomTopologicalOrder(all, 2, rnd) {
			for _, p := range u.Parents() {
				if p != nil {
					Expect(placed[*p]).To(BeTrue())
				}
			}
			for round := 0; round < u.Round()-2; round++ {
				Expect(missing[round]).To(Equal(0))
			}
			missing[u.Round()]--
			placed[*u.Hash()] = true
		}
		Expect(placed).To(HaveLen(len(all)))
	})

	It("should only keep parents first without a lag", func() {
		all := RandomDag(4, 6, rnd)
		Expect(RandomTopologicalOrder(all, -1, rnd)).To(HaveLen(len(all)))
	})
})
