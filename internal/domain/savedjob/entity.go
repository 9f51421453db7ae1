package savedjob

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a join record: presence means the candidate bookmarked the job.
type SavedJob struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	SavedAt     time.Time
}
