package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-bridge/internal/domain/company"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/domain/notification"
	"career-bridge/internal/domain/user"
	"career-bridge/internal/repository"

	"github.com/google/uuid"
)

type AdminUsecase interface {
	// Stats recounts the live tables on every call; there is deliberately
	// no caching so the dashboard never shows stale totals.
	Stats(ctx context.Context) (repository.PlatformStats, error)
	ListPendingJobs(ctx context.Context, limit, offset int) ([]job.Job, error)
	DecideJobApproval(ctx context.Context, jobID uuid.UUID, decision job.ApprovalStatus) (job.Job, error)
	VerifyCompany(ctx context.Context, companyUserID uuid.UUID) (company.Profile, error)
	ListCompanies(ctx context.Context, onlyUnverified bool, limit, offset int) ([]company.Profile, error)
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type Admin struct {
	stats         repository.StatsRepository
	jobs          job.Repository
	companies     company.Repository
	users         user.Repository
	notifications notification.Repository
	cache         SearchCache
	logger        *log.Logger
}

func NewAdminUsecase(
	stats repository.StatsRepository,
	jobs job.Repository,
	companies company.Repository,
	users user.Repository,
	notifications notification.Repository,
	cache SearchCache,
	logger *log.Logger,
) *Admin {
	return &Admin{
		stats:         stats,
		jobs:          jobs,
		companies:     companies,
		users:         users,
		notifications: notifications,
		cache:         cache,
		logger:        logger,
	}
}

func (u *Admin) Stats(ctx context.Context) (repository.PlatformStats, error) {
	s, err := u.stats.Collect(ctx)
	if err != nil {
		return repository.PlatformStats{}, ErrInternal
	}
	return s, nil
}

func (u *Admin) ListPendingJobs(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.jobs.List(ctx, job.ListFilter{
		OnlyPendingApproval: true,
		Limit:               limit,
		Offset:              offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Admin) DecideJobApproval(ctx context.Context, jobID uuid.UUID, decision job.ApprovalStatus) (job.Job, error) {
	if !decision.Valid() {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if !j.ApprovalStatus.CanTransition(decision) {
		return job.Job{}, job.ErrInvalidTransition
	}

	if err := u.jobs.SetApprovalStatus(ctx, jobID, decision); err != nil {
		return job.Job{}, ErrInternal
	}
	j.ApprovalStatus = decision

	// An approval changes what the public listing shows.
	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "jobs:list:*"); err != nil && u.logger != nil {
			u.logger.Printf("[Admin] cache invalidation failed: %v", err)
		}
	}

	u.notify(ctx, j.EmployerID, notification.TypeJobApproval,
		"Job moderation",
		fmt.Sprintf("Your posting %q was %s", j.Title, decision),
		"/employer/jobs/"+j.ID.String(),
	)

	return j, nil
}

func (u *Admin) VerifyCompany(ctx context.Context, companyUserID uuid.UUID) (company.Profile, error) {
	verifiedAt := time.Now().UTC()
	if err := u.companies.SetVerified(ctx, companyUserID, verifiedAt); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Profile{}, company.ErrNotFound
		}
		return company.Profile{}, ErrInternal
	}

	u.notify(ctx, companyUserID, notification.TypeCompanyVerified,
		"Company verified",
		"Your company profile has been verified",
		"/employer/profile",
	)

	p, err := u.companies.GetByUserID(ctx, companyUserID)
	if err != nil {
		return company.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Admin) ListCompanies(ctx context.Context, onlyUnverified bool, limit, offset int) ([]company.Profile, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.companies.List(ctx, onlyUnverified, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Admin) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) error {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}
	if usr.Role == user.RoleAdmin {
		return ErrForbidden
	}

	if err := u.users.SetActive(ctx, userID, active); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Admin) notify(ctx context.Context, userID uuid.UUID, typ, title, message, link string) {
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
		u.logger.Printf("[Admin] notification failed user=%s err=%v", userID, err)
	}
}
