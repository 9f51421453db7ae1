package seeder

import (
	"context"
	"errors"
	"fmt"

	"career-bridge/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DemoJobsSeeder posts a few approved listings under the demo employer so a
// fresh install has something to browse. It is a no-op when the employer is
// missing or already has postings.
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "employer_id", "title", "category", "location", "level", "work_type",
		"salary_min", "salary_max", "description", "requirements", "skills", "benefits",
		"status", "approval_status"); err != nil {
		return err
	}

	var employerID uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, "employer@career-bridge.local").Scan(&employerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	var existing int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title        string
		Category     string
		Location     string
		Level        string
		WorkType     string
		SalaryMin    int64
		SalaryMax    int64
		Description  string
		Requirements []string
		Skills       []string
		Benefits     []string
	}{
		{
			Title:        "Backend Engineer",
			Category:     "software-development",
			Location:     "remote",
			Level:        "mid",
			WorkType:     "full-time",
			SalaryMin:    70_000,
			SalaryMax:    95_000,
			Description:  "Build and operate the services behind our hiring platform.",
			Requirements: []string{"3+ years backend experience", "Production SQL experience"},
			Skills:       []string{"Go", "PostgreSQL", "Redis"},
			Benefits:     []string{"Remote-first", "Learning budget"},
		},
		{
			Title:        "Product Designer",
			Category:     "design",
			Location:     "new-york",
			Level:        "senior",
			WorkType:     "full-time",
			SalaryMin:    85_000,
			SalaryMax:    120_000,
			Description:  "Own the candidate experience end to end.",
			Requirements: []string{"Portfolio of shipped product work"},
			Skills:       []string{"Figma", "Prototyping"},
			Benefits:     []string{"Health insurance", "Annual offsite"},
		},
		{
			Title:        "Growth Marketer",
			Category:     "marketing",
			Location:     "london",
			Level:        "junior",
			WorkType:     "hybrid",
			SalaryMin:    40_000,
			SalaryMax:    55_000,
			Description:  "Run acquisition experiments across paid and organic channels.",
			Requirements: []string{"Analytical mindset", "Strong writing"},
			Skills:       []string{"SEO", "Analytics"},
			Benefits:     []string{"Flexible hours"},
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs
				(id, employer_id, title, category, location, level, work_type,
				salary_min, salary_max, description, requirements, skills, benefits,
				status, approval_status)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'active', 'approved')`,
			employerID, it.Title, it.Category, it.Location, it.Level, it.WorkType,
			it.SalaryMin, it.SalaryMax, it.Description, it.Requirements, it.Skills, it.Benefits,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
