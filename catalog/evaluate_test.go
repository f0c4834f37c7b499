package catalog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/pointer"
	"github.com/tidepool-org/roster/test"
)

var _ = Describe("Evaluate", func() {
	Describe("lessThan", func() {
		band := catalog.Band{Label: "<30mins", Goal: 30, Condition: catalog.ConditionLessThan, Threshold: pointer.FromAny(30)}

		It("excludes the threshold itself", func() {
			Expect(catalog.Evaluate(30, band).Passes).To(BeFalse())
		})

		It("includes the value right below the threshold", func() {
			Expect(catalog.Evaluate(29, band).Passes).To(BeTrue())
		})

		It("excludes values above the threshold", func() {
			Expect(catalog.Evaluate(60, band).Passes).To(BeFalse())
		})
	})

	Describe("greaterThan", func() {
		band := catalog.Band{Label: "60+mins", Goal: 60, Condition: catalog.ConditionGreaterThan, Threshold: pointer.FromAny(59)}

		It("excludes the threshold itself", func() {
			Expect(catalog.Evaluate(59, band).Passes).To(BeFalse())
		})

		It("includes the value right above the threshold", func() {
			Expect(catalog.Evaluate(60, band).Passes).To(BeTrue())
		})
	})

	Describe("between", func() {
		band := catalog.Band{Label: "30-59mins", Goal: 30, Condition: catalog.ConditionBetween, Min: pointer.FromAny(30), Max: pointer.FromAny(59)}

		It("includes both ends of the range", func() {
			Expect(catalog.Evaluate(30, band).Passes).To(BeTrue())
			Expect(catalog.Evaluate(59, band).Passes).To(BeTrue())
		})

		It("excludes values outside of the range", func() {
			Expect(catalog.Evaluate(29, band).Passes).To(BeFalse())
			Expect(catalog.Evaluate(60, band).Passes).To(BeFalse())
		})

		It("accepts a degenerate range", func() {
			single := catalog.Band{Condition: catalog.ConditionBetween, Min: pointer.FromAny(7), Max: pointer.FromAny(7)}
			Expect(catalog.Evaluate(7, single).Passes).To(BeTrue())
			Expect(catalog.Evaluate(8, single).Passes).To(BeFalse())
		})
	})

	DescribeTable("bands without a configured bound pass every value",
		func(band catalog.Band) {
			for i := 0; i < 20; i++ {
				value := test.Faker.IntBetween(0, 1000)
				Expect(catalog.Evaluate(value, band).Passes).To(BeTrue())
			}
		},
		Entry("lessThan without threshold", catalog.Band{Condition: catalog.ConditionLessThan}),
		Entry("greaterThan without threshold", catalog.Band{Condition: catalog.ConditionGreaterThan}),
		Entry("between without bounds", catalog.Band{Condition: catalog.ConditionBetween}),
		Entry("between without max", catalog.Band{Condition: catalog.ConditionBetween, Min: pointer.FromAny(500)}),
		Entry("between without min", catalog.Band{Condition: catalog.ConditionBetween, Max: pointer.FromAny(1)}),
	)

	DescribeTable("relation to goal",
		func(value int, expected catalog.Relation) {
			band := catalog.Band{Goal: 30, Condition: catalog.ConditionLessThan, Threshold: pointer.FromAny(30)}
			Expect(catalog.Evaluate(value, band).Relation).To(Equal(expected))
		},
		Entry("met when equal to the goal", 30, catalog.RelationMet),
		Entry("above when greater than the goal", 31, catalog.RelationAbove),
		Entry("below when less than the goal", 29, catalog.RelationBelow),
		Entry("below when zero", 0, catalog.RelationBelow),
	)

	It("computes the relation independently of passing", func() {
		band := catalog.Band{Goal: 10, Condition: catalog.ConditionGreaterThan, Threshold: pointer.FromAny(50)}
		result := catalog.Evaluate(20, band)
		Expect(result.Passes).To(BeFalse())
		Expect(result.Relation).To(Equal(catalog.RelationAbove))
	})
})
