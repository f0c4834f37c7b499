package fixture

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/mohae/deepcopy"
	"gopkg.in/yaml.v3"

	"github.com/tidepool-org/roster/patients"
)

var _ patients.Repository = &Repository{}

type document struct {
	Patients []patients.Patient `yaml:"patients"`
}

// Repository keeps patients in memory. It is seeded from a YAML or JSON file
// and never writes back to it.
type Repository struct {
	mu       sync.RWMutex
	patients []patients.Patient
}

func New(list []patients.Patient) (*Repository, error) {
	r := &Repository{}
	for _, p := range list {
		if _, err := r.Create(context.Background(), p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Load parses a document with a top level "patients" list. Missing statuses
// default to active.
func Load(data []byte) (*Repository, error) {
	doc := document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse patients fixture: %w", err)
	}
	for i := range doc.Patients {
		if doc.Patients[i].Status == "" {
			doc.Patients[i].Status = patients.StatusActive
		}
	}
	return New(doc.Patients)
}

// LoadFile returns an empty repository when path is empty.
func LoadFile(path string) (*Repository, error) {
	if path == "" {
		return New(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read patients fixture: %w", err)
	}
	return Load(data)
}

func (r *Repository) List(_ context.Context) ([]patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepcopy.Copy(r.patients).([]patients.Patient), nil
}

func (r *Repository) Get(_ context.Context, id string) (*patients.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := patients.Index(r.patients, id)
	if i < 0 {
		return nil, patients.ErrNotFound
	}
	patient := deepcopy.Copy(r.patients[i]).(patients.Patient)
	return &patient, nil
}

func (r *Repository) Create(_ context.Context, patient patients.Patient) (*patients.Patient, error) {
	if err := patients.Validate(patient); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if patients.Index(r.patients, patient.Id) >= 0 {
		return nil, fmt.Errorf("%w: %s", patients.ErrDuplicate, patient.Id)
	}
	patient = deepcopy.Copy(patient).(patients.Patient)
	r.patients = append(r.patients, patient)
	return &patient, nil
}

func (r *Repository) UpdateStatus(_ context.Context, id string, status patients.Status) (*patients.Patient, error) {
	return r.update(id, func(p *patients.Patient) {
		p.Status = status
	})
}

func (r *Repository) UpdateTags(_ context.Context, id string, tags []patients.Tag) (*patients.Patient, error) {
	return r.update(id, func(p *patients.Patient) {
		p.Tags = slices.Clone(tags)
	})
}

func (r *Repository) UpdateAssignment(_ context.Context, id string, assignment patients.Assignment) (*patients.Patient, error) {
	return r.update(id, assignment.Apply)
}

func (r *Repository) update(id string, fn func(p *patients.Patient)) (*patients.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := patients.Index(r.patients, id)
	if i < 0 {
		return nil, patients.ErrNotFound
	}
	fn(&r.patients[i])
	patient := deepcopy.Copy(r.patients[i]).(patients.Patient)
	return &patient, nil
}
