package usecase

import (
	"context"
	"errors"
	"testing"

	"career-bridge/internal/domain/job"

	"github.com/google/uuid"
)

func TestSavedJobUsecase_Toggle_Saves(t *testing.T) {
	jobs := newMockJobRepo()
	saved := newMockSavedJobRepo()
	uc := NewSavedJobUsecase(saved, jobs)

	j := job.Job{ID: uuid.New(), Status: job.StatusActive, ApprovalStatus: job.ApprovalApproved}
	jobs.jobs[j.ID] = j

	candidateID := uuid.New()
	isSaved, err := uc.Toggle(context.Background(), candidateID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !isSaved {
		t.Fatalf("expected saved=true")
	}

	items, err := uc.ListByCandidate(context.Background(), candidateID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 saved job, got %d", len(items))
	}
}

func TestSavedJobUsecase_Toggle_TwiceRestoresOriginalState(t *testing.T) {
	jobs := newMockJobRepo()
	saved := newMockSavedJobRepo()
	uc := NewSavedJobUsecase(saved, jobs)

	j := job.Job{ID: uuid.New()}
	jobs.jobs[j.ID] = j

	candidateID := uuid.New()
	first, err := uc.Toggle(context.Background(), candidateID, j.ID)
	if err != nil || !first {
		t.Fatalf("first toggle: saved=%v err=%v", first, err)
	}

	second, err := uc.Toggle(context.Background(), candidateID, j.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second {
		t.Fatalf("expected saved=false after second toggle")
	}

	items, err := uc.ListByCandidate(context.Background(), candidateID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
}

func TestSavedJobUsecase_Toggle_UnknownJobRejected(t *testing.T) {
	uc := NewSavedJobUsecase(newMockSavedJobRepo(), newMockJobRepo())

	_, err := uc.Toggle(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}
