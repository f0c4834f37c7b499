package roster_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/catalog"
	"github.com/tidepool-org/roster/errors"
	"github.com/tidepool-org/roster/patients"
	patientsTest "github.com/tidepool-org/roster/patients/test"
	"github.com/tidepool-org/roster/roster"
	"github.com/tidepool-org/roster/test"
)

var _ = Describe("Session", func() {
	var ctx context.Context
	var repo *patientsTest.MockRepository
	var session *roster.Session
	var list []patients.Patient

	BeforeEach(func() {
		ctx = context.Background()
		repo = patientsTest.NewMockRepository(gomock.NewController(GinkgoT()))
		list = []patients.Patient{
			{Id: "a", Name: "Joe Smith", Coach: "Hannah Wright", Status: patients.StatusActive, Totals: patients.Totals{PCM: 60}},
			{Id: "b", Name: "Mary Jones", Status: patients.StatusArchived, Totals: patients.Totals{PCM: 5}},
		}
		session = roster.NewSession("session", list, catalog.Default(0), repo, zap.NewNop().Sugar())
	})

	It("starts with the initial filter state", func() {
		Expect(session.Id()).To(Equal("session"))
		Expect(session.Filter()).To(Equal(roster.NewFilterState()))
		Expect(ids(session.Visible())).To(Equal([]string{"a"}))
		Expect(ids(session.Patients())).To(Equal([]string{"a", "b"}))
	})

	It("applies filter transitions to the visible patients", func() {
		session.SetScope(roster.ScopeAll)
		Expect(ids(session.Visible())).To(Equal([]string{"a", "b"}))

		session.SelectBand(catalog.CategoryPCM, "<30mins")
		Expect(ids(session.Visible())).To(Equal([]string{"b"}))

		f := session.SelectBand(catalog.CategoryPCM, "<30mins")
		Expect(f.SelectedBand).To(BeNil())
		Expect(ids(session.Visible())).To(Equal([]string{"a", "b"}))

		session.SetScope(roster.ScopeActive)
		session.SetSearchText("HANNAH")
		Expect(ids(session.Visible())).To(Equal([]string{"a"}))

		session.SetSearchText("mary")
		Expect(session.Visible()).To(BeEmpty())

		session.SelectBand(catalog.CategoryPCM, "60+mins")
		Expect(session.ClearBand().SelectedBand).To(BeNil())
	})

	Describe("ToggleStatus", func() {
		It("persists the new status and updates the collection", func() {
			repo.EXPECT().UpdateStatus(gomock.Any(), "a", patients.StatusArchived).Return(&list[0], nil)

			patient, err := session.ToggleStatus(ctx, "a")
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Status).To(Equal(patients.StatusArchived))
			Expect(session.Visible()).To(BeEmpty())
			Expect(list[0].Status).To(Equal(patients.StatusActive))
		})

		It("doesn't update the collection when the repository fails", func() {
			repo.EXPECT().UpdateStatus(gomock.Any(), "a", patients.StatusArchived).Return(nil, fmt.Errorf("unavailable"))

			patient, err := session.ToggleStatus(ctx, "a")
			Expect(err).To(MatchError("unavailable"))
			Expect(patient).To(BeNil())
			Expect(session.Patients()).To(Equal(list))
		})

		It("ignores unknown patients without calling the repository", func() {
			patient, err := session.ToggleStatus(ctx, "missing")
			Expect(err).ToNot(HaveOccurred())
			Expect(patient).To(BeNil())
			Expect(session.Patients()).To(Equal(list))
		})
	})

	Describe("tags", func() {
		It("persists added tags", func() {
			tag := patients.Tag{Name: "follow-up", Priority: patients.PriorityHigh}
			repo.EXPECT().UpdateTags(gomock.Any(), "b", test.Match(func(tags []patients.Tag) bool {
				return len(tags) == 1 && tags[0] == tag
			})).Return(&list[1], nil)

			patient, err := session.AddTag(ctx, "b", tag)
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Tags).To(ConsistOf(tag))
		})

		It("persists removed tags", func() {
			tag := patients.Tag{Name: "follow-up", Priority: patients.PriorityHigh}
			repo.EXPECT().UpdateTags(gomock.Any(), "b", gomock.Any()).Return(&list[1], nil).Times(2)

			_, err := session.AddTag(ctx, "b", tag)
			Expect(err).ToNot(HaveOccurred())
			patient, err := session.RemoveTag(ctx, "b", "follow-up")
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Tags).To(BeEmpty())
		})
	})

	It("persists assignments", func() {
		assignment := patients.Assignment{Coach: "Paul Hart"}
		repo.EXPECT().UpdateAssignment(gomock.Any(), "a", assignment).Return(&list[0], nil)

		patient, err := session.Assign(ctx, "a", assignment)
		Expect(err).ToNot(HaveOccurred())
		Expect(patient.Coach).To(Equal("Paul Hart"))
		Expect(patient.Name).To(Equal("Joe Smith"))
	})

	Describe("Admit", func() {
		It("creates an active patient", func() {
			patient := patientsTest.RandomPatient()
			patient.Status = patients.StatusArchived
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p patients.Patient) (*patients.Patient, error) {
				return &p, nil
			})

			admitted, err := session.Admit(ctx, patient)
			Expect(err).ToNot(HaveOccurred())
			Expect(admitted.Status).To(Equal(patients.StatusActive))
			Expect(session.Patients()).To(HaveLen(3))
		})

		It("rejects duplicates without calling the repository", func() {
			_, err := session.Admit(ctx, patients.Patient{Id: "a", Name: "Joe Smith"})
			Expect(err).To(MatchError(errors.Duplicate))
			Expect(session.Patients()).To(HaveLen(2))
		})
	})

	Context("without a repository", func() {
		It("keeps mutations in memory", func() {
			session := roster.NewSession("memory", list, catalog.Default(0), nil, zap.NewNop().Sugar())

			_, err := session.ToggleStatus(ctx, "b")
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(session.Visible())).To(Equal([]string{"a", "b"}))
		})
	})
})
