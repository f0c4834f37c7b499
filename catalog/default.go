package catalog

import "github.com/tidepool-org/roster/pointer"

func defaultCategories(intakeSlotsNeeded int) []Category {
	return []Category{
		{
			Name: CategoryCCM,
			Bands: []Band{
				{Label: "<20mins", Goal: 20, Condition: ConditionLessThan, Threshold: pointer.FromAny(20)},
				{Label: "20-39mins", Goal: 20, Condition: ConditionBetween, Min: pointer.FromAny(20), Max: pointer.FromAny(39)},
				{Label: "40-59mins", Goal: 40, Condition: ConditionBetween, Min: pointer.FromAny(40), Max: pointer.FromAny(59)},
				{Label: "60+mins", Goal: 60, Condition: ConditionGreaterThan, Threshold: pointer.FromAny(59)},
			},
		},
		{
			Name: CategoryPCM,
			Bands: []Band{
				{Label: "<30mins", Goal: 30, Condition: ConditionLessThan, Threshold: pointer.FromAny(30)},
				{Label: "30-59mins", Goal: 30, Condition: ConditionBetween, Min: pointer.FromAny(30), Max: pointer.FromAny(59)},
				{Label: "60+mins", Goal: 60, Condition: ConditionGreaterThan, Threshold: pointer.FromAny(59)},
			},
		},
		{
			Name: CategoryRPM,
			Bands: []Band{
				{Label: "<16 readings", Goal: 16, Condition: ConditionLessThan, Threshold: pointer.FromAny(16)},
				{Label: "16+ readings", Goal: 16, Condition: ConditionGreaterThan, Threshold: pointer.FromAny(15)},
			},
		},
		{
			Name: CategoryActive,
			Bands: []Band{
				{Label: "Active", Goal: 100, Condition: ConditionGreaterThan, Threshold: pointer.FromAny(0)},
			},
			IntakeSlotsNeeded: intakeSlotsNeeded,
		},
	}
}

// Default returns the built-in catalog. intakeSlotsNeeded is displayed with the
// enrollment category and is never derived here.
func Default(intakeSlotsNeeded int) *Catalog {
	return MustNew(defaultCategories(max(intakeSlotsNeeded, 0))...)
}
