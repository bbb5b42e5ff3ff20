package config_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "gitlab.com/alephledger/election-go/pkg/config"
	"gitlab.com/alephledger/election-go/pkg/gomel"
)

var _ = Describe("Params", func() {
	Describe("json configuration", func() {
		Describe("Store and Load Params", func() {
			It("should return same Params", func() {
				params := NewDefaultParams()
				params.NProc = 10
				params.FirstRound = 3
				params.LogHuman = true
				paramsCopy := params

				// store params using a buffer
				var buf bytes.Buffer
				err := NewJSONConfigWriter().StoreParams(&buf, &params)
				Expect(err).NotTo(HaveOccurred())

				// load the params from the buffer
				var newParams Params
				err = NewJSONConfigLoader().LoadParams(&buf, &newParams)
				Expect(err).NotTo(HaveOccurred())
				Expect(newParams).To(Equal(paramsCopy))
			})
		})

		Describe("parsing incomplete JSON configuration", func() {
			It("should return an error", func() {
				jsonConfig := "{\"NProc\": 10}"
				var params Params
				err := NewJSONConfigLoader().LoadParams(strings.NewReader(jsonConfig), &params)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("configuration with non-existent field", func() {
			It("should return an error", func() {
				jsonConfig := "{\"BlaBla\": 1000}"
				var params Params
				err := NewJSONConfigLoader().LoadParams(strings.NewReader(jsonConfig), &params)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("broken configuration", func() {
			It("should return an error", func() {
				jsonConfig := "adasdjiojoi  a{ aaa/"
				var params Params
				err := NewJSONConfigLoader().LoadParams(strings.NewReader(jsonConfig), &params)
				Expect(err).To(HaveOccurred())
			})
		})

		Describe("loading into nil", func() {
			It("should return an error", func() {
				err := NewJSONConfigLoader().LoadParams(strings.NewReader("{}"), nil)
				Expect(err).To(BeAssignableToTypeOf(&gomel.ConfigError{}))
			})
		})
	})

	Describe("Check", func() {
		var params Params

		BeforeEach(func() {
			params = NewDefaultParams()
		})

		It("should accept the defaults", func() {
			Expect(Check(params)).To(Succeed())
		})
		It("should refuse an empty committee", func() {
			params.NProc = 0
			Expect(Check(params)).To(BeAssignableToTypeOf(&gomel.ConfigError{}))
		})
		It("should refuse a negative first round", func() {
			params.FirstRound = -1
			Expect(Check(params)).To(HaveOccurred())
		})
		It("should refuse unknown log levels", func() {
			params.LogLevel = 6
			Expect(Check(params)).To(HaveOccurred())
			params.LogLevel = -1
			Expect(Check(params)).To(Succeed())
		})
		It("should refuse negative sizes", func() {
			params.ChannelBuffer = -1
			Expect(Check(params)).To(HaveOccurred())
			params = NewDefaultParams()
			params.LogBuffer = -5
			Expect(Check(params)).To(HaveOccurred())
			params = NewDefaultParams()
			params.LogMemInterval = -5
			Expect(Check(params)).To(HaveOccurred())
		})
	})

	Describe("LogConfig", func() {
		It("should carry the logging parameters over", func() {
			params := NewDefaultParams()
			params.LogLevel = 3
			params.LogHuman = true
			lc := LogConfig(params, "stderr")
			Expect(lc.Level).To(Equal(3))
			Expect(lc.Path).To(Equal("stderr"))
			Expect(lc.DiodeBuf).To(Equal(params.LogBuffer))
			Expect(lc.Human).To(BeTrue())
		})
	})
})
