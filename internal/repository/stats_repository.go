package repository

import (
	"context"

	"career-bridge/internal/database"
)

// PlatformStats is the admin dashboard snapshot. Every field is recounted
// from the live tables on each call; nothing here is cached or stored.
type PlatformStats struct {
	TotalUsers          int64
	Candidates          int64
	Employers           int64
	TotalJobs           int64
	ActiveJobs          int64
	PendingApprovalJobs int64
	TotalApplications   int64
	PendingApplications int64
	TotalCompanies      int64
	VerifiedCompanies   int64
	UnreadNotifications int64
}

type StatsRepository interface {
	Collect(ctx context.Context) (PlatformStats, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) Collect(ctx context.Context) (PlatformStats, error) {
	var s PlatformStats
	row := r.db.QueryRow(ctx, `
SELECT
	(SELECT COUNT(*) FROM users),
	(SELECT COUNT(*) FROM users WHERE role = 'candidate'),
	(SELECT COUNT(*) FROM users WHERE role = 'employer'),
	(SELECT COUNT(*) FROM jobs),
	(SELECT COUNT(*) FROM jobs WHERE status = 'active' AND approval_status = 'approved'),
	(SELECT COUNT(*) FROM jobs WHERE approval_status = 'pending'),
	(SELECT COUNT(*) FROM applications),
	(SELECT COUNT(*) FROM applications WHERE status = 'pending'),
	(SELECT COUNT(*) FROM company_profiles),
	(SELECT COUNT(*) FROM company_profiles WHERE verified = TRUE),
	(SELECT COUNT(*) FROM notifications WHERE read = FALSE)`)
	err := row.Scan(
		&s.TotalUsers, &s.Candidates, &s.Employers,
		&s.TotalJobs, &s.ActiveJobs, &s.PendingApprovalJobs,
		&s.TotalApplications, &s.PendingApplications,
		&s.TotalCompanies, &s.VerifiedCompanies,
		&s.UnreadNotifications,
	)
	if err != nil {
		return PlatformStats{}, err
	}
	return s, nil
}
