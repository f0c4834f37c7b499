package roster

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
)

type predicate func(p patients.Patient) bool

// Query returns the patients visible under the filter state, in input order.
// Stages run in a fixed order (scope, search, band) and each one keeps the
// patients of the previous stage that satisfy its predicate. A stage that can't
// resolve its input keeps every patient.
func Query(list []patients.Patient, c *catalog.Catalog, f FilterState) []patients.Patient {
	stages := []predicate{
		scopeStage(f),
		searchStage(f),
		bandStage(c, f),
	}

	result := make([]patients.Patient, 0, len(list))
	result = append(result, list...)
	for _, stage := range stages {
		if stage != nil {
			result = keep(result, stage)
		}
	}
	return result
}

func keep(list []patients.Patient, fn predicate) []patients.Patient {
	kept := list[:0]
	for _, p := range list {
		if fn(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func scopeStage(f FilterState) predicate {
	switch f.EffectiveScope() {
	case ScopeActive:
		return patients.Patient.IsActive
	case ScopeArchived:
		return patients.Patient.IsArchived
	}
	return nil
}

func searchStage(f FilterState) predicate {
	if f.EffectiveScope() != ScopeActive || f.SearchText == "" {
		return nil
	}

	folder := cases.Fold()
	needle := folder.String(f.SearchText)
	return func(p patients.Patient) bool {
		for _, field := range []string{p.Name, p.Coach, p.Therapist, p.Group} {
			if strings.Contains(folder.String(field), needle) {
				return true
			}
		}
		return false
	}
}

func bandStage(c *catalog.Catalog, f FilterState) predicate {
	if f.SelectedBand == nil {
		return nil
	}
	ref := *f.SelectedBand
	band, ok := c.Band(ref.Category, ref.Label)
	if !ok {
		return nil
	}

	return func(p patients.Patient) bool {
		total, ok := p.Total(ref.Category)
		if !ok {
			return true
		}
		return catalog.Evaluate(total, band).Passes
	}
}
