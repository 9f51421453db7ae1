package dto

import (
	"time"

	"career-bridge/internal/domain/savedjob"
)

type ToggleSavedJobResponse struct {
	JobID string `json:"job_id"`
	Saved bool   `json:"saved"`
}

type SavedJobResponse struct {
	ID      string    `json:"id"`
	JobID   string    `json:"job_id"`
	SavedAt time.Time `json:"saved_at"`
}

func NewSavedJobListResponse(items []savedjob.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SavedJobResponse{
			ID:      s.ID.String(),
			JobID:   s.JobID.String(),
			SavedAt: s.SavedAt,
		})
	}
	return out
}
