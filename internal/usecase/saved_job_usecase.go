package usecase

import (
	"context"
	"errors"
	"time"

	"career-bridge/internal/domain/job"
	"career-bridge/internal/domain/savedjob"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	// Toggle flips bookmark membership and reports the resulting state.
	// Calling it twice with the same pair restores the original state.
	Toggle(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]savedjob.SavedJob, error)
}

type SavedJobs struct {
	saved savedjob.Repository
	jobs  job.Repository
}

func NewSavedJobUsecase(saved savedjob.Repository, jobs job.Repository) *SavedJobs {
	return &SavedJobs{saved: saved, jobs: jobs}
}

func (u *SavedJobs) Toggle(ctx context.Context, candidateID, jobID uuid.UUID) (bool, error) {
	existing, err := u.saved.Find(ctx, candidateID, jobID)
	if err == nil {
		if err := u.saved.Delete(ctx, existing.ID); err != nil && !errors.Is(err, savedjob.ErrNotFound) {
			return false, ErrInternal
		}
		return false, nil
	}
	if !errors.Is(err, savedjob.ErrNotFound) {
		return false, ErrInternal
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return false, job.ErrNotFound
		}
		return false, ErrInternal
	}

	s := savedjob.SavedJob{
		ID:          uuid.New(),
		CandidateID: candidateID,
		JobID:       jobID,
		SavedAt:     time.Now().UTC(),
	}
	if err := u.saved.Insert(ctx, s); err != nil {
		return false, ErrInternal
	}
	return true, nil
}

func (u *SavedJobs) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]savedjob.SavedJob, error) {
	items, err := u.saved.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
