package roster

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/patients"
)

// Session pairs a filter state with the collection it applies to. Operations are
// serialized and replace the pair wholesale, so readers always observe a
// consistent snapshot. Mutations are written to the repository before they
// become visible; a nil repository keeps the session in memory only.
type Session struct {
	id          string
	createdTime time.Time

	catalog *catalog.Catalog
	repo    patients.Repository
	logger  *zap.SugaredLogger

	mu       sync.Mutex
	patients []patients.Patient
	filter   FilterState
}

func NewSession(id string, list []patients.Patient, c *catalog.Catalog, repo patients.Repository, logger *zap.SugaredLogger) *Session {
	return &Session{
		id:          id,
		createdTime: time.Now(),
		catalog:     c,
		repo:        repo,
		logger:      logger.With("sessionId", id),
		patients:    slices.Clip(list),
		filter:      NewFilterState(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) CreatedTime() time.Time {
	return s.createdTime
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) Filter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Patients returns the full collection regardless of the filter state.
func (s *Session) Patients() []patients.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.patients)
}

// Visible returns the patients selected by the current filter state.
func (s *Session) Visible() []patients.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Query(s.patients, s.catalog, s.filter)
}

func (s *Session) SetScope(scope Scope) FilterState {
	return s.transition(func(f FilterState) FilterState { return f.WithScope(scope) })
}

func (s *Session) SetSearchText(text string) FilterState {
	return s.transition(func(f FilterState) FilterState { return f.WithSearchText(text) })
}

func (s *Session) SelectBand(category, label string) FilterState {
	return s.transition(func(f FilterState) FilterState { return f.SelectBand(category, label) })
}

func (s *Session) ClearBand() FilterState {
	return s.transition(FilterState.ClearBand)
}

func (s *Session) transition(fn func(FilterState) FilterState) FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = fn(s.filter)
	s.logger.Debugw("filter updated", "filter", s.filter)
	return s.filter
}

// ToggleStatus flips the lifecycle status of a patient. Unknown ids return nil
// without touching the repository.
func (s *Session) ToggleStatus(ctx context.Context, id string) (*patients.Patient, error) {
	return s.mutate(id, patients.ToggleStatus, func(p patients.Patient) error {
		if s.repo == nil {
			return nil
		}
		_, err := s.repo.UpdateStatus(ctx, p.Id, p.Status)
		return err
	})
}

func (s *Session) AddTag(ctx context.Context, id string, tag patients.Tag) (*patients.Patient, error) {
	add := func(list []patients.Patient, id string) []patients.Patient {
		return patients.AddTag(list, id, tag)
	}
	return s.mutate(id, add, s.persistTags(ctx))
}

func (s *Session) RemoveTag(ctx context.Context, id string, name string) (*patients.Patient, error) {
	remove := func(list []patients.Patient, id string) []patients.Patient {
		return patients.RemoveTag(list, id, name)
	}
	return s.mutate(id, remove, s.persistTags(ctx))
}

func (s *Session) Assign(ctx context.Context, id string, assignment patients.Assignment) (*patients.Patient, error) {
	assign := func(list []patients.Patient, id string) []patients.Patient {
		return patients.Assign(list, id, assignment)
	}
	return s.mutate(id, assign, func(p patients.Patient) error {
		if s.repo == nil {
			return nil
		}
		_, err := s.repo.UpdateAssignment(ctx, p.Id, assignment)
		return err
	})
}

// Admit validates and stores a new patient and adds it to the collection.
func (s *Session) Admit(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := patients.Admit(s.patients, patient)
	if err != nil {
		return nil, err
	}
	admitted := updated[len(updated)-1]
	if s.repo != nil {
		if _, err := s.repo.Create(ctx, admitted); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("admitted patient", "patientId", admitted.Id)
	s.patients = updated
	return &admitted, nil
}

func (s *Session) persistTags(ctx context.Context) func(p patients.Patient) error {
	return func(p patients.Patient) error {
		if s.repo == nil {
			return nil
		}
		_, err := s.repo.UpdateTags(ctx, p.Id, p.Tags)
		return err
	}
}

func (s *Session) mutate(id string, fn func([]patients.Patient, string) []patients.Patient, persist func(patients.Patient) error) (*patients.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := patients.Index(s.patients, id)
	if i < 0 {
		s.logger.Debugw("ignoring mutation of unknown patient", "patientId", id)
		return nil, nil
	}

	updated := fn(s.patients, id)
	patient := updated[i]
	if err := persist(patient); err != nil {
		s.logger.Warnw("unable to persist patient", "patientId", id, zap.Error(err))
		return nil, err
	}

	s.logger.Infow("updated patient", "patientId", id, "status", patient.Status)
	s.patients = updated
	return &patient, nil
}
