package dto

import (
	"time"

	"career-bridge/internal/domain/application"
	"career-bridge/internal/usecase"
)

type ApplyRequest struct {
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

type ReviewApplicationRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
	Rating *int16  `json:"rating"`
}

func (r ReviewApplicationRequest) ToInput() usecase.ReviewInput {
	return usecase.ReviewInput{
		Status: application.Status(r.Status),
		Notes:  r.Notes,
		Rating: r.Rating,
	}
}

type ApplicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	CandidateID string    `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	Rating      int16     `json:"rating"`
	AppliedAt   time.Time `json:"applied_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.String(),
		JobID:       a.JobID.String(),
		CandidateID: a.CandidateID.String(),
		CoverLetter: a.CoverLetter,
		Status:      string(a.Status),
		Notes:       a.Notes,
		Rating:      a.Rating,
		AppliedAt:   a.AppliedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationListResponse(items []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
