package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-bridge/internal/domain/job"

	"github.com/google/uuid"
)

type JobCreateInput struct {
	Title            string
	Category         string
	Location         string
	Level            string
	WorkType         string
	Positions        int
	SalaryMin        int64
	SalaryMax        int64
	SalaryNegotiable bool
	Description      string
	Requirements     []string
	Skills           []string
	Benefits         []string
	Urgent           bool
	Deadline         *time.Time
}

type JobUpdateInput struct {
	Title            *string
	Category         *string
	Location         *string
	Level            *string
	WorkType         *string
	Positions        *int
	SalaryMin        *int64
	SalaryMax        *int64
	SalaryNegotiable *bool
	Description      *string
	Requirements     []string
	Skills           []string
	Benefits         []string
	Urgent           *bool
	Deadline         *time.Time
	Status           *job.Status
}

type JobUsecase interface {
	ListPublic(ctx context.Context, f job.ListFilter) ([]job.Job, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error)
	GetPublic(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, employerID uuid.UUID, in JobCreateInput) (job.Job, error)
	Update(ctx context.Context, employerID, id uuid.UUID, in JobUpdateInput) (job.Job, error)
	Delete(ctx context.Context, employerID, id uuid.UUID) error
}

type Jobs struct {
	jobs   job.Repository
	cache  SearchCache
	logger *log.Logger
}

func NewJobUsecase(jobs job.Repository, cache SearchCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger}
}

func (u *Jobs) ListPublic(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit < 0 || f.Limit > 100 {
		return nil, ErrInvalidInput
	}
	if f.Offset < 0 {
		return nil, ErrInvalidInput
	}

	f.OnlyVisible = true
	f.OnlyPendingApproval = false
	f.EmployerID = nil

	cacheKey := JobListCacheKey(f)
	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	// Single-flight: the first miss fills the cache, concurrent misses wait
	// briefly and re-check before falling through to the database.
	if u.cache != nil {
		lockKey := JobListLockKey(cacheKey)
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && !ok {
			time.Sleep(300 * time.Millisecond)
			var cached []job.Job
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				return cached, nil
			}
		}
	}

	items, err := u.jobs.List(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, items, 0); err == nil {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache SET: %s items=%d", cacheKey, len(items))
			}
		}
	}

	return items, nil
}

func (u *Jobs) ListByEmployer(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]job.Job, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	items, err := u.jobs.List(ctx, job.ListFilter{
		EmployerID: &employerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// GetPublic fetches one job and counts the view. Views are a best-effort
// metric; a failed increment never fails the read.
func (u *Jobs) GetPublic(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if err := u.jobs.IncrementViews(ctx, id); err == nil {
		j.Views++
	} else if u.logger != nil {
		u.logger.Printf("[Jobs] view increment failed id=%s err=%v", id, err)
	}

	return j, nil
}

func (u *Jobs) Create(ctx context.Context, employerID uuid.UUID, in JobCreateInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	if in.Positions <= 0 {
		in.Positions = 1
	}
	if in.SalaryMin < 0 || in.SalaryMax < 0 || (in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax) {
		return job.Job{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	j := job.Job{
		ID:               uuid.New(),
		EmployerID:       employerID,
		Title:            title,
		Category:         strings.TrimSpace(in.Category),
		Location:         strings.TrimSpace(in.Location),
		Level:            strings.TrimSpace(in.Level),
		WorkType:         strings.TrimSpace(in.WorkType),
		Positions:        in.Positions,
		SalaryMin:        in.SalaryMin,
		SalaryMax:        in.SalaryMax,
		SalaryNegotiable: in.SalaryNegotiable,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Skills:           in.Skills,
		Benefits:         in.Benefits,
		Status:           job.StatusActive,
		ApprovalStatus:   job.ApprovalPending,
		Urgent:           in.Urgent,
		PostedAt:         now,
		Deadline:         in.Deadline,
		Views:            0,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, employerID, id uuid.UUID, in JobUpdateInput) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.EmployerID != employerID {
		return job.Job{}, ErrForbidden
	}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return job.Job{}, ErrInvalidInput
		}
		j.Title = t
	}
	if in.Category != nil {
		j.Category = strings.TrimSpace(*in.Category)
	}
	if in.Location != nil {
		j.Location = strings.TrimSpace(*in.Location)
	}
	if in.Level != nil {
		j.Level = strings.TrimSpace(*in.Level)
	}
	if in.WorkType != nil {
		j.WorkType = strings.TrimSpace(*in.WorkType)
	}
	if in.Positions != nil {
		if *in.Positions <= 0 {
			return job.Job{}, ErrInvalidInput
		}
		j.Positions = *in.Positions
	}
	if in.SalaryMin != nil {
		j.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		j.SalaryMax = *in.SalaryMax
	}
	if j.SalaryMin < 0 || j.SalaryMax < 0 || (j.SalaryMax > 0 && j.SalaryMin > j.SalaryMax) {
		return job.Job{}, ErrInvalidInput
	}
	if in.SalaryNegotiable != nil {
		j.SalaryNegotiable = *in.SalaryNegotiable
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Requirements != nil {
		j.Requirements = in.Requirements
	}
	if in.Skills != nil {
		j.Skills = in.Skills
	}
	if in.Benefits != nil {
		j.Benefits = in.Benefits
	}
	if in.Urgent != nil {
		j.Urgent = *in.Urgent
	}
	if in.Deadline != nil {
		j.Deadline = in.Deadline
	}
	if in.Status != nil {
		next := *in.Status
		if !next.Valid() {
			return job.Job{}, ErrInvalidInput
		}
		if next != j.Status {
			if !j.Status.CanTransition(next) {
				return job.Job{}, job.ErrInvalidTransition
			}
			j.Status = next
		}
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return j, nil
}

func (u *Jobs) Delete(ctx context.Context, employerID, id uuid.UUID) error {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}
	if j.EmployerID != employerID {
		return ErrForbidden
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateListings(ctx)
	return nil
}

func (u *Jobs) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, "jobs:list:*"); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] cache invalidation failed: %v", err)
	}
}
