package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/store"
)

const (
	patientsCollectionName = "patients"
)

var _ patients.Repository = &repository{}

func NewRepository(db *mongo.Database, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) patients.Repository {
	repo := &repository{
		collection: db.Collection(patientsCollectionName),
		logger:     logger,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo
}

type repository struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "id", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniquePatient"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetName("PatientStatus"),
		},
	})
	return err
}

func (r *repository) Ping(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

// List returns every patient in insertion order.
func (r *repository) List(ctx context.Context) ([]patients.Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	list := make([]patients.Patient, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding patients list: %w", err)
	}

	return list, nil
}

func (r *repository) Get(ctx context.Context, id string) (*patients.Patient, error) {
	patient := &patients.Patient{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, patients.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) Create(ctx context.Context, patient patients.Patient) (*patients.Patient, error) {
	if patient.Tags == nil {
		patient.Tags = []patients.Tag{}
	}
	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", patients.ErrDuplicate, patient.Id)
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	r.logger.Infow("created patient", "patientId", patient.Id)
	return r.Get(ctx, patient.Id)
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status patients.Status) (*patients.Patient, error) {
	return r.update(ctx, id, bson.M{"status": status})
}

func (r *repository) UpdateTags(ctx context.Context, id string, tags []patients.Tag) (*patients.Patient, error) {
	if tags == nil {
		tags = []patients.Tag{}
	}
	return r.update(ctx, id, bson.M{"tags": tags})
}

func (r *repository) UpdateAssignment(ctx context.Context, id string, assignment patients.Assignment) (*patients.Patient, error) {
	set := bson.M{}
	if assignment.Group != "" {
		set["group"] = assignment.Group
	}
	if assignment.Coach != "" {
		set["coach"] = assignment.Coach
	}
	if assignment.Therapist != "" {
		set["therapist"] = assignment.Therapist
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}
	return r.update(ctx, id, set)
}

func (r *repository) update(ctx context.Context, id string, set bson.M) (*patients.Patient, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	patient := &patients.Patient{}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, patients.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error updating patient: %w", err)
	}

	r.logger.Debugw("updated patient", "patientId", id, "attributes", set)
	return patient, nil
}
