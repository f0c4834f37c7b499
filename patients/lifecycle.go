package patients

import (
	"slices"

	"github.com/mohae/deepcopy"
)

// ToggleStatus flips the status of the patient with the given id between Active
// and Archived. The input is never modified; an unknown id returns the input.
func ToggleStatus(list []Patient, id string) []Patient {
	return update(list, id, func(p *Patient) {
		p.Status = p.Status.Toggled()
	})
}

// Index returns the position of the patient with the given id or -1.
func Index(list []Patient, id string) int {
	return slices.IndexFunc(list, func(p Patient) bool {
		return p.Id == id
	})
}

// update applies fn to a copy of the patient with the given id and returns a new
// collection holding the copy in place of the original.
func update(list []Patient, id string, fn func(p *Patient)) []Patient {
	i := Index(list, id)
	if i < 0 {
		return list
	}

	patient := deepcopy.Copy(list[i]).(Patient)
	fn(&patient)

	updated := slices.Clone(list)
	updated[i] = patient
	return updated
}
