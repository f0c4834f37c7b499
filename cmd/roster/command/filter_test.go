package command

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/pointer"
	"github.com/tidepool-org/roster/roster"
)

var _ = Describe("Filter flags", func() {
	BeforeEach(func() {
		filterParams.Fixture = ""
		filterParams.Scope = string(roster.ScopeActive)
		filterParams.Search = ""
		filterParams.Category = ""
		filterParams.Band = ""
	})

	It("builds the initial filter state by default", func() {
		f, err := filterState()
		Expect(err).ToNot(HaveOccurred())
		Expect(f).To(Equal(roster.NewFilterState()))
	})

	It("builds a filter state from the flags", func() {
		filterParams.Scope = "AllList"
		filterParams.Search = "hannah"
		filterParams.Category = "PCM"
		filterParams.Band = "<30mins"

		f, err := filterState()
		Expect(err).ToNot(HaveOccurred())
		Expect(f.Scope).To(Equal(roster.ScopeAll))
		Expect(f.SearchText).To(Equal("hannah"))
		Expect(f.SelectedBand).To(Equal(&roster.BandRef{Category: "PCM", Label: "<30mins"}))
	})

	It("rejects unknown scopes", func() {
		filterParams.Scope = "Everyone"
		_, err := filterState()
		Expect(err).To(HaveOccurred())
	})

	It("selects the fixture source", func() {
		GinkgoT().Setenv("ROSTER_PATIENTS_SOURCE", "mongo")
		GinkgoT().Setenv("ROSTER_FIXTURE_PATH", "")
		filterParams.Fixture = "patients.yaml"

		Expect(useFixture()).To(Succeed())
		Expect(os.Getenv("ROSTER_PATIENTS_SOURCE")).To(Equal("fixture"))
		Expect(os.Getenv("ROSTER_FIXTURE_PATH")).To(Equal("patients.yaml"))
	})
})

var _ = Describe("describe", func() {
	DescribeTable("prints the band condition",
		func(band catalog.Band, expected string) {
			Expect(describe(band)).To(Equal(expected))
		},
		Entry("less than", catalog.Band{Condition: catalog.ConditionLessThan, Threshold: pointer.FromAny(20)}, "< 20"),
		Entry("greater than", catalog.Band{Condition: catalog.ConditionGreaterThan, Threshold: pointer.FromAny(59)}, "> 59"),
		Entry("between", catalog.Band{Condition: catalog.ConditionBetween, Min: pointer.FromAny(30), Max: pointer.FromAny(59)}, "30..59"),
		Entry("missing bound", catalog.Band{Condition: catalog.ConditionBetween, Min: pointer.FromAny(30)}, "between"),
	)
})
