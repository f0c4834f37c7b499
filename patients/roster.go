package patients

import (
	"fmt"
	"slices"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the invariants a patient must satisfy before it is admitted
// to a roster.
func Validate(patient Patient) error {
	if err := validate.Struct(patient); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func ValidateTag(tag Tag) error {
	if err := validate.Struct(tag); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Admit appends a newly created patient to the collection. New patients are
// always active.
func Admit(list []Patient, patient Patient) ([]Patient, error) {
	patient.Status = StatusActive
	if err := Validate(patient); err != nil {
		return list, err
	}
	if Index(list, patient.Id) >= 0 {
		return list, fmt.Errorf("%w: %s", ErrDuplicate, patient.Id)
	}

	return append(slices.Clip(list), patient), nil
}

// AddTag appends a tag to a patient. Tag names are not required to be unique.
func AddTag(list []Patient, id string, tag Tag) []Patient {
	return update(list, id, func(p *Patient) {
		p.Tags = append(p.Tags, tag)
	})
}

// RemoveTag removes every tag with the given name from a patient.
func RemoveTag(list []Patient, id string, name string) []Patient {
	return update(list, id, func(p *Patient) {
		p.Tags = slices.DeleteFunc(p.Tags, func(t Tag) bool {
			return t.Name == name
		})
	})
}

func Assign(list []Patient, id string, assignment Assignment) []Patient {
	if assignment.Empty() {
		return list
	}
	return update(list, id, assignment.Apply)
}

// DistinctTagNames returns the sorted names of all tags used in the collection.
func DistinctTagNames(list []Patient) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, patient := range list {
		for _, tag := range patient.Tags {
			set.Add(tag.Name)
		}
	}
	names := set.ToSlice()
	sort.Strings(names)
	return names
}
