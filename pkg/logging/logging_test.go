package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"gitlab.com/alephledger/election-go/pkg/gomel"
	. "gitlab.com/alephledger/election-go/pkg/logging"
	"gitlab.com/alephledger/election-go/pkg/unit"
)

func lastEntry(buf *bytes.Buffer) map[string]interface{} {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	ExpectWithOffset(1, json.Unmarshal([]byte(lines[len(lines)-1]), &entry)).To(Succeed())
	return entry
}

var _ = Describe("Logging", func() {
	var (
		buf bytes.Buffer
		log zerolog.Logger
		u   gomel.Unit
	)

	BeforeEach(func() {
		buf.Reset()
		log = zerolog.New(&buf).Level(zerolog.DebugLevel)
		u = unit.New(2, 7, make([]*gomel.Hash, 4), nil)
	})

	Describe("AddingError", func() {
		It("should log successful insertions", func() {
			AddingError(nil, u, log)
			entry := lastEntry(&buf)
			Expect(entry[zerolog.MessageFieldName]).To(Equal(UnitAdded))
			Expect(entry[Creator]).To(BeNumerically("==", 2))
			Expect(entry[Round]).To(BeNumerically("==", 7))
		})
		It("should log duplicates", func() {
			AddingError(gomel.NewDuplicateUnit(u), u, log)
			Expect(lastEntry(&buf)[zerolog.MessageFieldName]).To(Equal(DuplicatedUnit))
		})
		It("should log the number of unknown parents", func() {
			AddingError(gomel.NewUnknownParents(3), u, log)
			entry := lastEntry(&buf)
			Expect(entry[zerolog.MessageFieldName]).To(Equal(UnknownParents))
			Expect(entry[Size]).To(BeNumerically("==", 3))
		})
		It("should log the reason of other rejections", func() {
			AddingError(gomel.NewDataError("broken"), u, log)
			entry := lastEntry(&buf)
			Expect(entry[zerolog.MessageFieldName]).To(Equal(UnitRejected))
			Expect(entry[Reason]).To(ContainSubstring("broken"))
		})
	})

	Describe("Decoder", func() {
		It("should write events in a human readable form", func() {
			var out bytes.Buffer
			decoder := NewDecoder(&out)
			line := `{"T":5,"L":"1","S":0,"R":3,"#":"abc","E":"H"}`
			n, err := decoder.Write([]byte(line))
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(len(line)))
			Expect(out.String()).To(ContainSubstring("ELECT"))
			Expect(out.String()).To(ContainSubstring("round"))
			Expect(out.String()).To(ContainSubstring("head elected"))
			Expect(out.String()).To(ContainSubstring("info"))
		})
		It("should refuse broken lines", func() {
			_, err := NewDecoder(&bytes.Buffer{}).Write([]byte("{broken"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("memory log service", func() {
		It("should log starting and stopping", func() {
			service := NewService(0, log)
			Expect(service.Start()).To(Succeed())
			service.Stop()
			Expect(buf.String()).To(ContainSubstring(ServiceStarted))
			Expect(lastEntry(&buf)[zerolog.MessageFieldName]).To(Equal(ServiceStopped))
		})
	})
})
