package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-bridge/internal/domain/application"
	"career-bridge/internal/domain/job"

	"github.com/google/uuid"
)

func visibleJob(employerID uuid.UUID) job.Job {
	return job.Job{
		ID:             uuid.New(),
		EmployerID:     employerID,
		Title:          "Backend Engineer",
		Status:         job.StatusActive,
		ApprovalStatus: job.ApprovalApproved,
	}
}

func TestApplicationUsecase_Apply_Success(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	notifs := &mockNotificationRepo{}
	uc := NewApplicationUsecase(apps, jobs, notifs, nil)

	employerID := uuid.New()
	j := visibleJob(employerID)
	jobs.jobs[j.ID] = j

	candidateID := uuid.New()
	a, err := uc.Apply(context.Background(), candidateID, j.ID, "Hello")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusPending {
		t.Fatalf("expected pending, got %s", a.Status)
	}
	if len(notifs.created) != 1 || notifs.created[0].UserID != employerID {
		t.Fatalf("expected employer notification, got %+v", notifs.created)
	}
}

func TestApplicationUsecase_Apply_DuplicateRejected(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	j := visibleJob(uuid.New())
	jobs.jobs[j.ID] = j

	candidateID := uuid.New()
	if _, err := uc.Apply(context.Background(), candidateID, j.ID, ""); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}

	_, err := uc.Apply(context.Background(), candidateID, j.ID, "")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationUsecase_Apply_InvisibleJobRejected(t *testing.T) {
	jobs := newMockJobRepo()
	uc := NewApplicationUsecase(newMockApplicationRepo(), jobs, &mockNotificationRepo{}, nil)

	j := visibleJob(uuid.New())
	j.ApprovalStatus = job.ApprovalPending
	jobs.jobs[j.ID] = j

	_, err := uc.Apply(context.Background(), uuid.New(), j.ID, "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationUsecase_Apply_PastDeadlineRejected(t *testing.T) {
	jobs := newMockJobRepo()
	uc := NewApplicationUsecase(newMockApplicationRepo(), jobs, &mockNotificationRepo{}, nil)

	j := visibleJob(uuid.New())
	past := time.Now().Add(-24 * time.Hour)
	j.Deadline = &past
	jobs.jobs[j.ID] = j

	_, err := uc.Apply(context.Background(), uuid.New(), j.ID, "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationUsecase_Review_IllegalTransitionRejected(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	employerID := uuid.New()
	j := visibleJob(employerID)
	jobs.jobs[j.ID] = j

	a := application.Application{ID: uuid.New(), JobID: j.ID, CandidateID: uuid.New(), Status: application.StatusAccepted}
	apps.apps[a.ID] = a

	_, err := uc.Review(context.Background(), employerID, a.ID, ReviewInput{Status: application.StatusPending})
	if !errors.Is(err, application.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestApplicationUsecase_Review_WithdrawnNotAReviewStatus(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	employerID := uuid.New()
	j := visibleJob(employerID)
	jobs.jobs[j.ID] = j

	a := application.Application{ID: uuid.New(), JobID: j.ID, CandidateID: uuid.New(), Status: application.StatusPending}
	apps.apps[a.ID] = a

	_, err := uc.Review(context.Background(), employerID, a.ID, ReviewInput{Status: application.StatusWithdrawn})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationUsecase_Review_NotifiesCandidateAndKeepsAppliedAt(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	notifs := &mockNotificationRepo{}
	uc := NewApplicationUsecase(apps, jobs, notifs, nil)

	employerID := uuid.New()
	j := visibleJob(employerID)
	jobs.jobs[j.ID] = j

	appliedAt := time.Now().Add(-48 * time.Hour).UTC()
	candidateID := uuid.New()
	a := application.Application{ID: uuid.New(), JobID: j.ID, CandidateID: candidateID, Status: application.StatusPending, AppliedAt: appliedAt}
	apps.apps[a.ID] = a

	rating := int16(4)
	got, err := uc.Review(context.Background(), employerID, a.ID, ReviewInput{Status: application.StatusShortlisted, Rating: &rating})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusShortlisted {
		t.Fatalf("expected shortlisted, got %s", got.Status)
	}
	if got.Rating != 4 {
		t.Fatalf("expected rating 4, got %d", got.Rating)
	}
	if !apps.apps[a.ID].AppliedAt.Equal(appliedAt) {
		t.Fatalf("applied_at must not change on review")
	}
	if len(notifs.created) != 1 || notifs.created[0].UserID != candidateID {
		t.Fatalf("expected candidate notification, got %+v", notifs.created)
	}
}

func TestApplicationUsecase_Review_RatingOutOfRangeRejected(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	employerID := uuid.New()
	j := visibleJob(employerID)
	jobs.jobs[j.ID] = j

	a := application.Application{ID: uuid.New(), JobID: j.ID, CandidateID: uuid.New(), Status: application.StatusPending}
	apps.apps[a.ID] = a

	rating := int16(6)
	_, err := uc.Review(context.Background(), employerID, a.ID, ReviewInput{Status: application.StatusShortlisted, Rating: &rating})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplicationUsecase_Withdraw_OnlyOwner(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	a := application.Application{ID: uuid.New(), JobID: uuid.New(), CandidateID: uuid.New(), Status: application.StatusPending}
	apps.apps[a.ID] = a

	_, err := uc.Withdraw(context.Background(), uuid.New(), a.ID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestApplicationUsecase_Withdraw_TerminalStateRejected(t *testing.T) {
	jobs := newMockJobRepo()
	apps := newMockApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, &mockNotificationRepo{}, nil)

	candidateID := uuid.New()
	a := application.Application{ID: uuid.New(), JobID: uuid.New(), CandidateID: candidateID, Status: application.StatusRejected}
	apps.apps[a.ID] = a

	_, err := uc.Withdraw(context.Background(), candidateID, a.ID)
	if !errors.Is(err, application.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
