package roster_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/roster"
)

var _ = Describe("FilterState", func() {
	It("starts with the active scope, no search and no band", func() {
		f := roster.NewFilterState()
		Expect(f.Scope).To(Equal(roster.ScopeActive))
		Expect(f.SearchText).To(BeEmpty())
		Expect(f.SelectedBand).To(BeNil())
	})

	It("treats the zero value as the active scope", func() {
		Expect(roster.FilterState{}.EffectiveScope()).To(Equal(roster.ScopeActive))
		Expect(roster.FilterState{}.Equal(roster.NewFilterState())).To(BeTrue())
	})

	It("replaces the scope without touching search or band", func() {
		f := roster.NewFilterState().
			WithSearchText("joe").
			SelectBand(catalog.CategoryPCM, "<30mins").
			WithScope(roster.ScopeArchived)

		Expect(f.Scope).To(Equal(roster.ScopeArchived))
		Expect(f.SearchText).To(Equal("joe"))
		Expect(f.SelectedBand).To(Equal(&roster.BandRef{Category: catalog.CategoryPCM, Label: "<30mins"}))
	})

	It("doesn't modify the receiver", func() {
		f := roster.NewFilterState()
		f.WithScope(roster.ScopeAll)
		f.WithSearchText("joe")
		f.SelectBand(catalog.CategoryPCM, "<30mins")

		Expect(f).To(Equal(roster.NewFilterState()))
	})

	Describe("SelectBand", func() {
		It("clears the selection when the same band is selected twice", func() {
			empty := roster.NewFilterState()
			f := empty.SelectBand(catalog.CategoryPCM, "<30mins").SelectBand(catalog.CategoryPCM, "<30mins")
			Expect(f).To(Equal(empty))
		})

		It("replaces a different selection", func() {
			f := roster.NewFilterState().
				SelectBand(catalog.CategoryPCM, "<30mins").
				SelectBand(catalog.CategoryCCM, "<20mins")
			Expect(f.SelectedBand).To(Equal(&roster.BandRef{Category: catalog.CategoryCCM, Label: "<20mins"}))
		})

		It("treats the same label in another category as a different band", func() {
			f := roster.NewFilterState().
				SelectBand(catalog.CategoryPCM, "60+mins").
				SelectBand(catalog.CategoryCCM, "60+mins")
			Expect(f.SelectedBand).To(Equal(&roster.BandRef{Category: catalog.CategoryCCM, Label: "60+mins"}))
		})

		It("doesn't change the scope", func() {
			f := roster.NewFilterState().WithScope(roster.ScopeAll).SelectBand(catalog.CategoryPCM, "<30mins")
			Expect(f.Scope).To(Equal(roster.ScopeAll))
		})
	})

	It("clears the band unconditionally", func() {
		Expect(roster.NewFilterState().ClearBand().SelectedBand).To(BeNil())
		Expect(roster.NewFilterState().SelectBand(catalog.CategoryPCM, "<30mins").ClearBand().SelectedBand).To(BeNil())
	})

	DescribeTable("ParseScope",
		func(value string, expected roster.Scope, valid bool) {
			scope, err := roster.ParseScope(value)
			if !valid {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).ToNot(HaveOccurred())
			Expect(scope).To(Equal(expected))
		},
		Entry("active", "ActiveList", roster.ScopeActive, true),
		Entry("all", "AllList", roster.ScopeAll, true),
		Entry("archived", "ArchivedList", roster.ScopeArchived, true),
		Entry("unknown", "DeletedList", roster.Scope(""), false),
	)
})
