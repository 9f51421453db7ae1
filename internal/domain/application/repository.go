package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	// UpdateReview persists a status transition together with reviewer notes
	// and rating. AppliedAt is never touched.
	UpdateReview(ctx context.Context, id uuid.UUID, status Status, notes string, rating int16) error
}
