package patients

import (
	"fmt"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/errors"
)

var (
	ErrNotFound  = fmt.Errorf("patient %w", errors.NotFound)
	ErrDuplicate = fmt.Errorf("patient %w", errors.Duplicate)
	ErrInvalid   = fmt.Errorf("patient %w", errors.ConstraintViolation)
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusArchived Status = "Archived"
)

// Toggled returns the opposite lifecycle status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusArchived
	}
	return StatusActive
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func ParsePriority(value string) (Priority, error) {
	switch p := Priority(value); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown tag priority %q", errors.BadRequest, value)
}

type Tag struct {
	Name     string   `bson:"name" json:"name" yaml:"name" validate:"notblank"`
	Priority Priority `bson:"priority" json:"priority" yaml:"priority" validate:"oneof=high medium low"`
}

// Totals are the metric totals of a patient, one per catalog category.
type Totals struct {
	CCM    int `bson:"totalCCM" json:"totalCCM" yaml:"totalCCM" validate:"min=0"`
	PCM    int `bson:"totalPCM" json:"totalPCM" yaml:"totalPCM" validate:"min=0"`
	RPM    int `bson:"totalRPM" json:"totalRPM" yaml:"totalRPM" validate:"min=0"`
	Active int `bson:"totalActive" json:"totalActive" yaml:"totalActive" validate:"min=0"`
}

type Patient struct {
	Id        string `bson:"id" json:"id" yaml:"id" validate:"notblank"`
	Name      string `bson:"name" json:"name" yaml:"name" validate:"notblank"`
	Group     string `bson:"group,omitempty" json:"group" yaml:"group,omitempty"`
	Coach     string `bson:"coach,omitempty" json:"coach" yaml:"coach,omitempty"`
	Therapist string `bson:"therapist,omitempty" json:"therapist" yaml:"therapist,omitempty"`
	Totals    `bson:",inline" yaml:",inline"`
	Status    Status `bson:"status" json:"status" yaml:"status" validate:"oneof=Active Archived"`
	Tags      []Tag  `bson:"tags" json:"tags" yaml:"tags,omitempty" validate:"dive"`
}

// Total resolves a catalog category to the matching metric total.
func (p Patient) Total(category string) (int, bool) {
	switch category {
	case catalog.CategoryCCM:
		return p.CCM, true
	case catalog.CategoryPCM:
		return p.PCM, true
	case catalog.CategoryRPM:
		return p.RPM, true
	case catalog.CategoryActive:
		return p.Active, true
	}
	return 0, false
}

func (p Patient) IsActive() bool {
	return p.Status == StatusActive
}

func (p Patient) IsArchived() bool {
	return p.Status == StatusArchived
}

// Assignment updates the care team and group of a patient. Empty attributes are
// left unchanged.
type Assignment struct {
	Group     string `json:"group"`
	Coach     string `json:"coach"`
	Therapist string `json:"therapist"`
}

func (a Assignment) Empty() bool {
	return a.Group == "" && a.Coach == "" && a.Therapist == ""
}

func (a Assignment) Apply(p *Patient) {
	if a.Group != "" {
		p.Group = a.Group
	}
	if a.Coach != "" {
		p.Coach = a.Coach
	}
	if a.Therapist != "" {
		p.Therapist = a.Therapist
	}
}
