package dto

import "career-bridge/internal/repository"

type JobApprovalRequest struct {
	Decision string `json:"decision"`
}

type SetUserActiveRequest struct {
	Active bool `json:"active"`
}

type PlatformStatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	Candidates          int64 `json:"candidates"`
	Employers           int64 `json:"employers"`
	TotalJobs           int64 `json:"total_jobs"`
	ActiveJobs          int64 `json:"active_jobs"`
	PendingApprovalJobs int64 `json:"pending_approval_jobs"`
	TotalApplications   int64 `json:"total_applications"`
	PendingApplications int64 `json:"pending_applications"`
	TotalCompanies      int64 `json:"total_companies"`
	VerifiedCompanies   int64 `json:"verified_companies"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

func NewPlatformStatsResponse(s repository.PlatformStats) PlatformStatsResponse {
	return PlatformStatsResponse(s)
}
