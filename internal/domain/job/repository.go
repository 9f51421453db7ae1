package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// ListFilter holds independent optional predicates composing as AND. Zero
// values mean "no constraint".
type ListFilter struct {
	Search     string
	Location   string
	Category   string
	Level      string
	WorkType   string
	EmployerID *uuid.UUID
	// OnlyVisible restricts to active + approved jobs (public listings).
	OnlyVisible bool
	// OnlyPendingApproval restricts to the admin moderation queue.
	OnlyPendingApproval bool
	Limit               int
	Offset              int
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f ListFilter) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetApprovalStatus(ctx context.Context, id uuid.UUID, s ApprovalStatus) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
