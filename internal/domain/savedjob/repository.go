package savedjob

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("saved job not found")

type Repository interface {
	Find(ctx context.Context, candidateID, jobID uuid.UUID) (SavedJob, error)
	Insert(ctx context.Context, s SavedJob) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]SavedJob, error)
}
