package repository

import (
	"context"
	"errors"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/savedjob"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) Find(ctx context.Context, candidateID, jobID uuid.UUID) (savedjob.SavedJob, error) {
	var s savedjob.SavedJob
	row := r.db.QueryRow(ctx,
		`SELECT id, candidate_id, job_id, saved_at FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`,
		candidateID, jobID,
	)
	if err := row.Scan(&s.ID, &s.CandidateID, &s.JobID, &s.SavedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return savedjob.SavedJob{}, savedjob.ErrNotFound
		}
		return savedjob.SavedJob{}, err
	}
	return s, nil
}

func (r *PostgresSavedJobRepository) Insert(ctx context.Context, s savedjob.SavedJob) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (id, candidate_id, job_id, saved_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (candidate_id, job_id) DO NOTHING`,
		s.ID, s.CandidateID, s.JobID, s.SavedAt,
	)
	return err
}

func (r *PostgresSavedJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]savedjob.SavedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, job_id, saved_at FROM saved_jobs WHERE candidate_id = $1 ORDER BY saved_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]savedjob.SavedJob, 0)
	for rows.Next() {
		var s savedjob.SavedJob
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.JobID, &s.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
