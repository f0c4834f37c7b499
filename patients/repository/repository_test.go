package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/patients/repository"
	patientsTest "github.com/tidepool-org/roster/patients/test"
	dbTest "github.com/tidepool-org/roster/store/test"
)

var _ = Describe("Patients Repository", Label("mongo"), func() {
	var repo patients.Repository
	var database *mongo.Database
	var collection *mongo.Collection
	var lifecycle *fxtest.Lifecycle

	BeforeEach(func() {
		database = dbTest.GetTestDatabase()
		collection = database.Collection("patients")
		lifecycle = fxtest.NewLifecycle(GinkgoT())
		repo = repository.NewRepository(database, zap.NewNop().Sugar(), lifecycle)
		Expect(repo).ToNot(BeNil())
		lifecycle.RequireStart()
	})

	AfterEach(func() {
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStop()
	})

	Context("with existing patients", func() {
		var list []patients.Patient

		BeforeEach(func() {
			list = patientsTest.RandomPatients(5)
			for _, p := range list {
				_, err := repo.Create(context.Background(), p)
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("lists patients in insertion order", func() {
			result, err := repo.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(len(list)))
			for i := range list {
				Expect(result[i].Id).To(Equal(list[i].Id))
				Expect(result[i].Totals).To(Equal(list[i].Totals))
			}
		})

		It("gets a patient by id", func() {
			result, err := repo.Get(context.Background(), list[2].Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(PointTo(MatchFields(IgnoreExtras, Fields{
				"Id":     Equal(list[2].Id),
				"Name":   Equal(list[2].Name),
				"Status": Equal(list[2].Status),
			})))
		})

		It("rejects duplicate ids", func() {
			_, err := repo.Create(context.Background(), list[0])
			Expect(err).To(MatchError(patients.ErrDuplicate))
		})

		It("updates the status", func() {
			status := list[1].Status.Toggled()
			result, err := repo.UpdateStatus(context.Background(), list[1].Id, status)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(status))
		})

		It("replaces the tags", func() {
			tags := patientsTest.RandomTags(2)
			result, err := repo.UpdateTags(context.Background(), list[1].Id, tags)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Tags).To(Equal(tags))
		})

		It("updates only the assigned attributes", func() {
			result, err := repo.UpdateAssignment(context.Background(), list[3].Id, patients.Assignment{Coach: "Paul Hart"})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Coach).To(Equal("Paul Hart"))
			Expect(result.Group).To(Equal(list[3].Group))
			Expect(result.Therapist).To(Equal(list[3].Therapist))
		})
	})

	It("returns not found for unknown patients", func() {
		_, err := repo.Get(context.Background(), "missing")
		Expect(err).To(MatchError(patients.ErrNotFound))

		_, err = repo.UpdateStatus(context.Background(), "missing", patients.StatusArchived)
		Expect(err).To(MatchError(patients.ErrNotFound))
	})
})
