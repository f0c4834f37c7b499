package catalog

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/TwiN/deepmerge"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// document is the file representation of a catalog. Categories are keyed by
// name so that a file can extend or override the built-in categories.
type document struct {
	Categories map[string]categoryDocument `yaml:"categories" mapstructure:"categories"`
}

type categoryDocument struct {
	Order             int    `yaml:"order,omitempty" mapstructure:"order"`
	Bands             []Band `yaml:"bands" mapstructure:"bands"`
	IntakeSlotsNeeded int    `yaml:"intakeSlotsNeeded,omitempty" mapstructure:"intakeSlotsNeeded"`
}

// LoadFile reads a catalog document from path and merges it over the default
// catalog. An empty path returns the default catalog.
func LoadFile(path string, intakeSlotsNeeded int) (*Catalog, error) {
	if path == "" {
		return Default(intakeSlotsNeeded), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read catalog file: %w", err)
	}
	return Load(data, intakeSlotsNeeded)
}

// Load merges a YAML catalog document over the default catalog. Scalars in the
// document replace the defaults and unknown categories are added. A band
// replaces the band with the same label in its category, other bands are
// appended.
func Load(data []byte, intakeSlotsNeeded int) (*Catalog, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	overrides := document{}
	if err := decode(raw, &overrides); err != nil {
		return nil, err
	}

	// Bands are merged by label below, deepmerge would append them.
	if categories, ok := raw["categories"].(map[string]interface{}); ok {
		for _, category := range categories {
			if attributes, ok := category.(map[string]interface{}); ok {
				delete(attributes, "bands")
			}
		}
	}
	scalars, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	base, err := yaml.Marshal(defaultDocument(intakeSlotsNeeded))
	if err != nil {
		return nil, fmt.Errorf("unable to encode default catalog: %w", err)
	}
	merged, err := deepmerge.YAML(base, scalars, deepmerge.Config{PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	mergedRaw := map[string]interface{}{}
	if err := yaml.Unmarshal(merged, &mergedRaw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	doc := document{}
	if err := decode(mergedRaw, &doc); err != nil {
		return nil, err
	}
	doc.mergeBands(overrides)

	return New(doc.categories()...)
}

func decode(raw map[string]interface{}, doc *document) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      doc,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return nil
}

// mergeBands replaces the bands of d that share a label with an override band
// and appends the rest. Override bands are only matched against the bands d
// started with, so a label repeated within the overrides stays a duplicate.
func (d document) mergeBands(overrides document) {
	for name, override := range overrides.Categories {
		category := d.Categories[name]
		existing := category.Bands[:len(category.Bands):len(category.Bands)]
		for _, band := range override.Bands {
			i := slices.IndexFunc(existing, func(b Band) bool { return b.Label == band.Label })
			if i >= 0 {
				category.Bands[i] = band
				continue
			}
			category.Bands = append(category.Bands, band)
		}
		d.Categories[name] = category
	}
}

func defaultDocument(intakeSlotsNeeded int) document {
	doc := document{Categories: map[string]categoryDocument{}}
	for i, category := range defaultCategories(max(intakeSlotsNeeded, 0)) {
		doc.Categories[category.Name] = categoryDocument{
			Order:             i + 1,
			Bands:             category.Bands,
			IntakeSlotsNeeded: category.IntakeSlotsNeeded,
		}
	}
	return doc
}

// categories returns categories by their order. Categories without an order
// come last, sorted by name.
func (d document) categories() []Category {
	names := make([]string, 0, len(d.Categories))
	for name := range d.Categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := d.Categories[names[i]], d.Categories[names[j]]
		switch {
		case a.Order == b.Order:
			return names[i] < names[j]
		case a.Order == 0:
			return false
		case b.Order == 0:
			return true
		default:
			return a.Order < b.Order
		}
	})

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		c := d.Categories[name]
		categories = append(categories, Category{
			Name:              name,
			Bands:             c.Bands,
			IntakeSlotsNeeded: c.IntakeSlotsNeeded,
		})
	}
	return categories
}
