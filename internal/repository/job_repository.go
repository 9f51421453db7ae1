package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.employer_id, j.title, j.category, j.location, j.level, j.work_type,
	j.positions, j.salary_min, j.salary_max, j.salary_negotiable, j.description,
	j.requirements, j.skills, j.benefits, j.status, j.approval_status, j.featured,
	j.urgent, j.posted_at, j.deadline, j.views,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id),
	j.created_at, j.updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, category, location, level, work_type,
			positions, salary_min, salary_max, salary_negotiable, description,
			requirements, skills, benefits, status, approval_status, featured, urgent,
			posted_at, deadline, views)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		j.ID, j.EmployerID, j.Title, j.Category, j.Location, j.Level, j.WorkType,
		j.Positions, j.SalaryMin, j.SalaryMax, j.SalaryNegotiable, j.Description,
		j.Requirements, j.Skills, j.Benefits, string(j.Status), string(j.ApprovalStatus),
		j.Featured, j.Urgent, j.PostedAt, j.Deadline, j.Views,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id)
	return scanJob(row)
}

// buildListQuery turns the filter into a WHERE clause. Each predicate is
// independent and they compose as AND; the search term matches title, company
// name and location as a case-insensitive substring.
func buildListQuery(f job.ListFilter) (string, []any) {
	where := make([]string, 0, 8)
	args := make([]any, 0, 8)

	nextArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		p := nextArg("%" + s + "%")
		where = append(where, fmt.Sprintf(
			`(j.title ILIKE %[1]s OR j.location ILIKE %[1]s OR EXISTS (
				SELECT 1 FROM company_profiles cp WHERE cp.user_id = j.employer_id AND cp.name ILIKE %[1]s))`, p))
	}
	if v := strings.TrimSpace(f.Location); v != "" {
		where = append(where, "j.location = "+nextArg(v))
	}
	if v := strings.TrimSpace(f.Category); v != "" {
		where = append(where, "j.category = "+nextArg(v))
	}
	if v := strings.TrimSpace(f.Level); v != "" {
		where = append(where, "j.level = "+nextArg(v))
	}
	if v := strings.TrimSpace(f.WorkType); v != "" {
		where = append(where, "j.work_type = "+nextArg(v))
	}
	if f.EmployerID != nil {
		where = append(where, "j.employer_id = "+nextArg(*f.EmployerID))
	}
	if f.OnlyVisible {
		where = append(where, "j.status = 'active'", "j.approval_status = 'approved'")
	}
	if f.OnlyPendingApproval {
		where = append(where, "j.approval_status = 'pending'")
	}

	q := `SELECT ` + jobColumns + ` FROM jobs j`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY j.posted_at DESC, j.created_at DESC`

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	q += " LIMIT " + nextArg(limit) + " OFFSET " + nextArg(offset)

	return q, args
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Job, error) {
	q, args := buildListQuery(f)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJobRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, category = $3, location = $4, level = $5, work_type = $6,
			positions = $7, salary_min = $8, salary_max = $9, salary_negotiable = $10,
			description = $11, requirements = $12, skills = $13, benefits = $14,
			status = $15, featured = $16, urgent = $17, deadline = $18, updated_at = $19
		 WHERE id = $1`,
		j.ID, j.Title, j.Category, j.Location, j.Level, j.WorkType,
		j.Positions, j.SalaryMin, j.SalaryMax, j.SalaryNegotiable,
		j.Description, j.Requirements, j.Skills, j.Benefits,
		string(j.Status), j.Featured, j.Urgent, j.Deadline, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetApprovalStatus(ctx context.Context, id uuid.UUID, s job.ApprovalStatus) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET approval_status = $2, updated_at = now() WHERE id = $1`,
		id, string(s),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status, approval string
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Category, &j.Location, &j.Level, &j.WorkType,
		&j.Positions, &j.SalaryMin, &j.SalaryMax, &j.SalaryNegotiable, &j.Description,
		&j.Requirements, &j.Skills, &j.Benefits, &status, &approval, &j.Featured,
		&j.Urgent, &j.PostedAt, &j.Deadline, &j.Views, &j.ApplicationsCount,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	j.ApprovalStatus = job.ApprovalStatus(approval)
	return j, nil
}

func scanJobRows(rows database.Rows) (job.Job, error) {
	var j job.Job
	var status, approval string
	err := rows.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Category, &j.Location, &j.Level, &j.WorkType,
		&j.Positions, &j.SalaryMin, &j.SalaryMax, &j.SalaryNegotiable, &j.Description,
		&j.Requirements, &j.Skills, &j.Benefits, &status, &approval, &j.Featured,
		&j.Urgent, &j.PostedAt, &j.Deadline, &j.Views, &j.ApplicationsCount,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	j.ApprovalStatus = job.ApprovalStatus(approval)
	return j, nil
}
