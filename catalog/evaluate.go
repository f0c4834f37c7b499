package catalog

type Relation string

const (
	RelationMet   Relation = "met"
	RelationAbove Relation = "above"
	RelationBelow Relation = "below"
)

type Result struct {
	Passes   bool     `json:"passes"`
	Relation Relation `json:"relationToGoal"`
}

// Evaluate decides whether value belongs to the band and how it compares to the
// band's goal. Single sided bounds are strict, ranges are inclusive on both ends,
// and a bound that is not configured never excludes a value.
func Evaluate(value int, band Band) Result {
	return Result{
		Passes:   passes(value, band),
		Relation: relationToGoal(value, band.Goal),
	}
}

func passes(value int, band Band) bool {
	switch band.Condition {
	case ConditionLessThan:
		if band.Threshold == nil {
			return true
		}
		return value < *band.Threshold
	case ConditionGreaterThan:
		if band.Threshold == nil {
			return true
		}
		return value > *band.Threshold
	case ConditionBetween:
		if band.Min == nil || band.Max == nil {
			return true
		}
		return value >= *band.Min && value <= *band.Max
	}
	return true
}

func relationToGoal(value, goal int) Relation {
	switch {
	case value == goal:
		return RelationMet
	case value > goal:
		return RelationAbove
	default:
		return RelationBelow
	}
}
