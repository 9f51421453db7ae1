package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	var p candidate.Profile
	var expRaw, eduRaw []byte

	row := r.db.QueryRow(ctx,
		`SELECT user_id, bio, skills, expected_salary, preferred_locations, cv_url, experience, education, updated_at
		 FROM candidate_profiles WHERE user_id = $1`,
		userID,
	)
	err := row.Scan(&p.UserID, &p.Bio, &p.Skills, &p.ExpectedSalary, &p.PreferredLocations, &p.CVURL, &expRaw, &eduRaw, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, candidate.ErrNotFound
		}
		return candidate.Profile{}, err
	}

	if len(expRaw) > 0 {
		if err := json.Unmarshal(expRaw, &p.Experience); err != nil {
			return candidate.Profile{}, err
		}
	}
	if len(eduRaw) > 0 {
		if err := json.Unmarshal(eduRaw, &p.Education); err != nil {
			return candidate.Profile{}, err
		}
	}
	return p, nil
}

func (r *PostgresCandidateRepository) Upsert(ctx context.Context, p candidate.Profile) error {
	expRaw, err := json.Marshal(emptyIfNil(p.Experience))
	if err != nil {
		return err
	}
	eduRaw, err := json.Marshal(emptyIfNil(p.Education))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO candidate_profiles (user_id, bio, skills, expected_salary, preferred_locations, cv_url, experience, education, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			expected_salary = EXCLUDED.expected_salary,
			preferred_locations = EXCLUDED.preferred_locations,
			cv_url = EXCLUDED.cv_url,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Bio, p.Skills, p.ExpectedSalary, p.PreferredLocations, p.CVURL, expRaw, eduRaw, time.Now().UTC(),
	)
	return err
}

func (r *PostgresCandidateRepository) SetCVURL(ctx context.Context, userID uuid.UUID, cvURL string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET cv_url = $2, updated_at = now() WHERE user_id = $1`,
		userID, cvURL,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func emptyIfNil(entries []candidate.HistoryEntry) []candidate.HistoryEntry {
	if entries == nil {
		return []candidate.HistoryEntry{}
	}
	return entries
}
