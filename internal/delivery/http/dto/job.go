package dto

import (
	"time"

	"career-bridge/internal/domain/job"
	"career-bridge/internal/usecase"
)

type CreateJobRequest struct {
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Location         string     `json:"location"`
	Level            string     `json:"level"`
	WorkType         string     `json:"work_type"`
	Positions        int        `json:"positions"`
	SalaryMin        int64      `json:"salary_min"`
	SalaryMax        int64      `json:"salary_max"`
	SalaryNegotiable bool       `json:"salary_negotiable"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Skills           []string   `json:"skills"`
	Benefits         []string   `json:"benefits"`
	Urgent           bool       `json:"urgent"`
	Deadline         *time.Time `json:"deadline"`
}

func (r CreateJobRequest) ToInput() usecase.JobCreateInput {
	return usecase.JobCreateInput{
		Title:            r.Title,
		Category:         r.Category,
		Location:         r.Location,
		Level:            r.Level,
		WorkType:         r.WorkType,
		Positions:        r.Positions,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		SalaryNegotiable: r.SalaryNegotiable,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Skills:           r.Skills,
		Benefits:         r.Benefits,
		Urgent:           r.Urgent,
		Deadline:         r.Deadline,
	}
}

type UpdateJobRequest struct {
	Title            *string    `json:"title"`
	Category         *string    `json:"category"`
	Location         *string    `json:"location"`
	Level            *string    `json:"level"`
	WorkType         *string    `json:"work_type"`
	Positions        *int       `json:"positions"`
	SalaryMin        *int64     `json:"salary_min"`
	SalaryMax        *int64     `json:"salary_max"`
	SalaryNegotiable *bool      `json:"salary_negotiable"`
	Description      *string    `json:"description"`
	Requirements     []string   `json:"requirements"`
	Skills           []string   `json:"skills"`
	Benefits         []string   `json:"benefits"`
	Urgent           *bool      `json:"urgent"`
	Deadline         *time.Time `json:"deadline"`
	Status           *string    `json:"status"`
}

func (r UpdateJobRequest) ToInput() usecase.JobUpdateInput {
	in := usecase.JobUpdateInput{
		Title:            r.Title,
		Category:         r.Category,
		Location:         r.Location,
		Level:            r.Level,
		WorkType:         r.WorkType,
		Positions:        r.Positions,
		SalaryMin:        r.SalaryMin,
		SalaryMax:        r.SalaryMax,
		SalaryNegotiable: r.SalaryNegotiable,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Skills:           r.Skills,
		Benefits:         r.Benefits,
		Urgent:           r.Urgent,
		Deadline:         r.Deadline,
	}
	if r.Status != nil {
		s := job.Status(*r.Status)
		in.Status = &s
	}
	return in
}

type JobResponse struct {
	ID                string     `json:"id"`
	EmployerID        string     `json:"employer_id"`
	Title             string     `json:"title"`
	Category          string     `json:"category,omitempty"`
	Location          string     `json:"location,omitempty"`
	Level             string     `json:"level,omitempty"`
	WorkType          string     `json:"work_type,omitempty"`
	Positions         int        `json:"positions"`
	SalaryMin         int64      `json:"salary_min"`
	SalaryMax         int64      `json:"salary_max"`
	SalaryNegotiable  bool       `json:"salary_negotiable"`
	Description       string     `json:"description,omitempty"`
	Requirements      []string   `json:"requirements"`
	Skills            []string   `json:"skills"`
	Benefits          []string   `json:"benefits"`
	Status            string     `json:"status"`
	ApprovalStatus    string     `json:"approval_status"`
	Featured          bool       `json:"featured"`
	Urgent            bool       `json:"urgent"`
	PostedAt          time.Time  `json:"posted_at"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Views             int64      `json:"views"`
	ApplicationsCount int64      `json:"applications_count"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                j.ID.String(),
		EmployerID:        j.EmployerID.String(),
		Title:             j.Title,
		Category:          j.Category,
		Location:          j.Location,
		Level:             j.Level,
		WorkType:          j.WorkType,
		Positions:         j.Positions,
		SalaryMin:         j.SalaryMin,
		SalaryMax:         j.SalaryMax,
		SalaryNegotiable:  j.SalaryNegotiable,
		Description:       j.Description,
		Requirements:      emptyIfNil(j.Requirements),
		Skills:            emptyIfNil(j.Skills),
		Benefits:          emptyIfNil(j.Benefits),
		Status:            string(j.Status),
		ApprovalStatus:    string(j.ApprovalStatus),
		Featured:          j.Featured,
		Urgent:            j.Urgent,
		PostedAt:          j.PostedAt,
		Deadline:          j.Deadline,
		Views:             j.Views,
		ApplicationsCount: j.ApplicationsCount,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
