package repository

import (
	"context"
	"errors"
	"time"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, candidate_id, cover_letter, status, notes, rating, applied_at, updated_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, candidate_id, cover_letter, status, notes, rating, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.CandidateID, a.CoverLetter, string(a.Status), a.Notes, a.Rating, a.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on (job_id, candidate_id).
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY applied_at DESC`, candidateID)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`, jobID)
}

func (r *PostgresApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) UpdateReview(ctx context.Context, id uuid.UUID, status application.Status, notes string, rating int16) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, notes = $3, rating = $4, updated_at = $5 WHERE id = $1`,
		id, string(status), notes, rating, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		var status string
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &status, &a.Notes, &a.Rating, &a.AppliedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Status = application.Status(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &status, &a.Notes, &a.Rating, &a.AppliedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
