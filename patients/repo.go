package patients

import "context"

//go:generate mockgen -source=./repo.go -destination=./test/mock_repository.go -package test MockRepository

// Repository is the store the roster is loaded from and mutations are written to.
type Repository interface {
	List(ctx context.Context) ([]Patient, error)
	Get(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, patient Patient) (*Patient, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Patient, error)
	UpdateTags(ctx context.Context, id string, tags []Tag) (*Patient, error)
	UpdateAssignment(ctx context.Context, id string, assignment Assignment) (*Patient, error)
}
