package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID               uuid.UUID
	EmployerID       uuid.UUID
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
	Status           Status
	ApprovalStatus   ApprovalStatus
	Featured         bool
	Urgent           bool
	PostedAt         time.Time
	Deadline         *time.Time
	Views            int64
	// ApplicationsCount is derived by the repository, never stored.
	ApplicationsCount int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Visible reports whether the job may appear in public listings. Lifecycle
// status and moderation status are independent fields; candidates only see
// jobs that pass both.
func (j Job) Visible() bool {
	return j.Status == StatusActive && j.ApprovalStatus == ApprovalApproved
}
