package roster

import (
	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
)

// BandSummary counts the patients that pass a band and, among those, how they
// relate to the band's goal.
type BandSummary struct {
	Band  catalog.Band `json:"band"`
	Count int          `json:"count"`
	Met   int          `json:"met"`
	Above int          `json:"above"`
	Below int          `json:"below"`
}

type CategorySummary struct {
	Name              string        `json:"name"`
	Bands             []BandSummary `json:"bands"`
	IntakeSlotsNeeded int           `json:"intakeSlotsNeeded,omitempty"`
}

// Summarize aggregates the collection against every band of the catalog.
// Categories that don't map to a patient total report zero counts.
func Summarize(list []patients.Patient, c *catalog.Catalog) []CategorySummary {
	categories := c.Categories()
	summaries := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		summary := CategorySummary{
			Name:              category.Name,
			Bands:             make([]BandSummary, 0, len(category.Bands)),
			IntakeSlotsNeeded: category.IntakeSlotsNeeded,
		}
		for _, band := range category.Bands {
			summary.Bands = append(summary.Bands, summarizeBand(list, category.Name, band))
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func summarizeBand(list []patients.Patient, category string, band catalog.Band) BandSummary {
	summary := BandSummary{Band: band}
	for _, p := range list {
		total, ok := p.Total(category)
		if !ok {
			continue
		}
		result := catalog.Evaluate(total, band)
		if !result.Passes {
			continue
		}
		summary.Count++
		switch result.Relation {
		case catalog.RelationMet:
			summary.Met++
		case catalog.RelationAbove:
			summary.Above++
		default:
			summary.Below++
		}
	}
	return summary
}

// Indicator places one patient total within its category.
type Indicator struct {
	Category string           `json:"category"`
	Total    int              `json:"total"`
	Band     string           `json:"band,omitempty"`
	Goal     int              `json:"goal,omitempty"`
	Relation catalog.Relation `json:"relationToGoal,omitempty"`
}

// Indicators returns, per category, the first band the patient's total passes
// and the total's relation to that band's goal. Band and relation are empty
// when no band matches.
func Indicators(p patients.Patient, c *catalog.Catalog) []Indicator {
	var indicators []Indicator
	for _, category := range c.Categories() {
		total, ok := p.Total(category.Name)
		if !ok {
			continue
		}
		indicator := Indicator{Category: category.Name, Total: total}
		for _, band := range category.Bands {
			if result := catalog.Evaluate(total, band); result.Passes {
				indicator.Band = band.Label
				indicator.Goal = band.Goal
				indicator.Relation = result.Relation
				break
			}
		}
		indicators = append(indicators, indicator)
	}
	return indicators
}
