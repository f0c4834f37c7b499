// Package catalog describes the metric categories a roster can be filtered by and
// the goal bands each category is split into.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	CategoryCCM    = "CCM"
	CategoryPCM    = "PCM"
	CategoryRPM    = "RPM"
	CategoryActive = "Active"
)

// EnrollmentCategory is the category describing overall enrollment. It carries
// a single band and the intake slots figure.
const EnrollmentCategory = CategoryActive

var ErrInvalidCatalog = errors.New("invalid metric catalog")

type Condition string

const (
	ConditionLessThan    Condition = "lessThan"
	ConditionGreaterThan Condition = "greaterThan"
	ConditionBetween     Condition = "between"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionLessThan, ConditionGreaterThan, ConditionBetween:
		return true
	}
	return false
}

// Band is a labeled threshold or range with a goal value.
type Band struct {
	Label     string    `json:"label" yaml:"label" mapstructure:"label"`
	Goal      int       `json:"goal" yaml:"goal" mapstructure:"goal"`
	Condition Condition `json:"condition" yaml:"condition" mapstructure:"condition"`
	Threshold *int      `json:"threshold,omitempty" yaml:"threshold,omitempty" mapstructure:"threshold"`
	Min       *int      `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Max       *int      `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`
}

func (b Band) validate() error {
	switch b.Condition {
	case ConditionLessThan, ConditionGreaterThan:
		if b.Threshold == nil {
			return fmt.Errorf("band %q: %s requires a threshold", b.Label, b.Condition)
		}
		if b.Min != nil || b.Max != nil {
			return fmt.Errorf("band %q: %s does not accept min or max", b.Label, b.Condition)
		}
	case ConditionBetween:
		if b.Min == nil || b.Max == nil {
			return fmt.Errorf("band %q: between requires min and max", b.Label)
		}
		if b.Threshold != nil {
			return fmt.Errorf("band %q: between does not accept a threshold", b.Label)
		}
		if *b.Min > *b.Max {
			return fmt.Errorf("band %q: min %d is greater than max %d", b.Label, *b.Min, *b.Max)
		}
	default:
		return fmt.Errorf("band %q: unknown condition %q", b.Label, b.Condition)
	}
	return nil
}

// Category groups the bands of a single metric total.
type Category struct {
	Name              string `json:"name" yaml:"name" mapstructure:"name"`
	Bands             []Band `json:"bands" yaml:"bands" mapstructure:"bands"`
	IntakeSlotsNeeded int    `json:"intakeSlotsNeeded,omitempty" yaml:"intakeSlotsNeeded,omitempty" mapstructure:"intakeSlotsNeeded"`
}

func (c Category) validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}
	if c.IntakeSlotsNeeded < 0 {
		return fmt.Errorf("category %q: intake slots needed must not be negative", c.Name)
	}
	if c.Name == EnrollmentCategory && len(c.Bands) != 1 {
		return fmt.Errorf("category %q must have exactly one band, got %d", c.Name, len(c.Bands))
	}

	labels := mapset.NewThreadUnsafeSet[string]()
	for _, band := range c.Bands {
		if err := band.validate(); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
		if !labels.Add(band.Label) {
			return fmt.Errorf("category %q: duplicate band label %q", c.Name, band.Label)
		}
	}
	return nil
}

// Catalog is the read-only set of categories, in the order they were defined.
type Catalog struct {
	categories []Category
	index      map[string]int
}

func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, category := range categories {
		if err := category.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		if _, exists := c.index[category.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, category.Name)
		}
		category.Bands = slices.Clone(category.Bands)
		c.index[category.Name] = len(c.categories)
		c.categories = append(c.categories, category)
	}
	return c, nil
}

// MustNew is New for catalogs defined in code.
func MustNew(categories ...Category) *Catalog {
	c, err := New(categories...)
	if err != nil {
		panic(err)
	}
	return c
}

// BandsFor returns the bands of the named category. Unknown categories yield an
// empty slice.
func (c *Catalog) BandsFor(name string) []Band {
	category, ok := c.Category(name)
	if !ok {
		return []Band{}
	}
	return category.Bands
}

// Band looks up a band by its label within a category.
func (c *Catalog) Band(category, label string) (Band, bool) {
	for _, band := range c.BandsFor(category) {
		if band.Label == label {
			return band, true
		}
	}
	return Band{}, false
}

func (c *Catalog) Category(name string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	category := c.categories[i]
	category.Bands = slices.Clone(category.Bands)
	return category, true
}

func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	categories := make([]Category, 0, len(c.categories))
	for _, category := range c.categories {
		category.Bands = slices.Clone(category.Bands)
		categories = append(categories, category)
	}
	return categories
}
