package roster

import (
	"fmt"

	"github.com/tidepool-org/roster/errors"
)

// Scope selects the status subset of the roster that other filters apply to.
type Scope string

const (
	ScopeActive   Scope = "ActiveList"
	ScopeAll      Scope = "AllList"
	ScopeArchived Scope = "ArchivedList"
)

func ParseScope(value string) (Scope, error) {
	switch s := Scope(value); s {
	case ScopeActive, ScopeAll, ScopeArchived:
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown scope %q", errors.BadRequest, value)
}

// BandRef identifies a band by its category and label.
type BandRef struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// FilterState is the active combination of scope, search text and selected band.
// It is a value: transitions return a new state and never modify the receiver.
type FilterState struct {
	Scope        Scope    `json:"scope"`
	SearchText   string   `json:"searchText"`
	SelectedBand *BandRef `json:"selectedBand,omitempty"`
}

func NewFilterState() FilterState {
	return FilterState{Scope: ScopeActive}
}

func (f FilterState) WithScope(scope Scope) FilterState {
	f.Scope = scope
	return f
}

// WithSearchText records the search text. The text only narrows the result
// while the active scope is selected.
func (f FilterState) WithSearchText(text string) FilterState {
	f.SearchText = text
	return f
}

// SelectBand selects a band, replacing any previous selection. Selecting the
// band that is already selected clears the selection.
func (f FilterState) SelectBand(category, label string) FilterState {
	ref := BandRef{Category: category, Label: label}
	if f.SelectedBand != nil && *f.SelectedBand == ref {
		f.SelectedBand = nil
		return f
	}
	f.SelectedBand = &ref
	return f
}

func (f FilterState) ClearBand() FilterState {
	f.SelectedBand = nil
	return f
}

// EffectiveScope returns the scope, defaulting the zero value to ScopeActive.
func (f FilterState) EffectiveScope() Scope {
	if f.Scope == "" {
		return ScopeActive
	}
	return f.Scope
}

func (f FilterState) Equal(other FilterState) bool {
	if f.EffectiveScope() != other.EffectiveScope() || f.SearchText != other.SearchText {
		return false
	}
	if f.SelectedBand == nil || other.SelectedBand == nil {
		return f.SelectedBand == other.SelectedBand
	}
	return *f.SelectedBand == *other.SelectedBand
}
