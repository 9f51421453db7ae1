package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-bridge/internal/domain/application"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrAlreadyApplied = errors.New("already applied to this job")

type ReviewInput struct {
	Status application.Status
	Notes  *string
	Rating *int16
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID, jobID uuid.UUID, coverLetter string) (application.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error)
	ListByJob(ctx context.Context, employerID, jobID uuid.UUID) ([]application.Application, error)
	Review(ctx context.Context, employerID, applicationID uuid.UUID, in ReviewInput) (application.Application, error)
	Withdraw(ctx context.Context, candidateID, applicationID uuid.UUID) (application.Application, error)
}

type Applications struct {
	applications  application.Repository
	jobs          job.Repository
	notifications notification.Repository
	logger        *log.Logger
}

func NewApplicationUsecase(
	applications application.Repository,
	jobs job.Repository,
	notifications notification.Repository,
	logger *log.Logger,
) *Applications {
	return &Applications{
		applications:  applications,
		jobs:          jobs,
		notifications: notifications,
		logger:        logger,
	}
}

func (u *Applications) Apply(ctx context.Context, candidateID, jobID uuid.UUID, coverLetter string) (application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	if !j.Visible() {
		return application.Application{}, ErrForbidden
	}
	if j.Deadline != nil && time.Now().After(*j.Deadline) {
		return application.Application{}, ErrForbidden
	}

	exists, err := u.applications.ExistsByJobAndCandidate(ctx, jobID, candidateID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		CoverLetter: coverLetter,
		Status:      application.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}

	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	u.notify(ctx, j.EmployerID, notification.TypeApplicationUpdate,
		"New application",
		fmt.Sprintf("A candidate applied to %q", j.Title),
		"/employer/jobs/"+j.ID.String()+"/applications",
	)

	return a, nil
}

func (u *Applications) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	items, err := u.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Applications) ListByJob(ctx context.Context, employerID, jobID uuid.UUID) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, job.ErrNotFound
		}
		return nil, ErrInternal
	}
	if j.EmployerID != employerID {
		return nil, ErrForbidden
	}

	items, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Review moves an application through the employer funnel. The transition
// table rejects anything illegal (e.g. accepted back to pending); notes and
// rating are updated alongside the status, applied_at never changes.
func (u *Applications) Review(ctx context.Context, employerID, applicationID uuid.UUID, in ReviewInput) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if j.EmployerID != employerID {
		return application.Application{}, ErrForbidden
	}

	next := in.Status
	if !next.Valid() || next == application.StatusWithdrawn {
		return application.Application{}, ErrInvalidInput
	}
	if next != a.Status && !a.Status.CanTransition(next) {
		return application.Application{}, application.ErrInvalidTransition
	}

	notes := a.Notes
	if in.Notes != nil {
		notes = *in.Notes
	}
	rating := a.Rating
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return application.Application{}, ErrInvalidInput
		}
		rating = *in.Rating
	}

	if err := u.applications.UpdateReview(ctx, applicationID, next, notes, rating); err != nil {
		return application.Application{}, ErrInternal
	}

	if next != a.Status {
		u.notify(ctx, a.CandidateID, notification.TypeApplicationUpdate,
			"Application update",
			fmt.Sprintf("Your application for %q is now %s", j.Title, next),
			"/applications",
		)
	}

	a.Status = next
	a.Notes = notes
	a.Rating = rating
	return a, nil
}

func (u *Applications) Withdraw(ctx context.Context, candidateID, applicationID uuid.UUID) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	if a.CandidateID != candidateID {
		return application.Application{}, ErrForbidden
	}

	if !a.Status.CanTransition(application.StatusWithdrawn) {
		return application.Application{}, application.ErrInvalidTransition
	}

	if err := u.applications.UpdateReview(ctx, applicationID, application.StatusWithdrawn, a.Notes, a.Rating); err != nil {
		return application.Application{}, ErrInternal
	}

	a.Status = application.StatusWithdrawn
	return a, nil
}

// notify is best-effort: a lost notification must never fail the operation
// that produced it.
func (u *Applications) notify(ctx context.Context, userID uuid.UUID, typ, title, message, link string) {
	if u.notifications == nil {
		return
	}
	n := notification.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.notifications.Create(ctx, n); err != nil && u.logger != nil {
		u.logger.Printf("[Applications] notification failed user=%s err=%v", userID, err)
	}
}
