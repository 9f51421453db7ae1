package repository

import (
	"context"
	"errors"
	"time"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `user_id, name, tax_code, industry, size, address, description, verified, verified_at, tier, benefits, created_at, updated_at`

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM company_profiles WHERE user_id = $1`, userID)
	p, err := scanCompany(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Profile{}, company.ErrNotFound
		}
		return company.Profile{}, err
	}
	return p, nil
}

func (r *PostgresCompanyRepository) Upsert(ctx context.Context, p company.Profile) error {
	tier := p.Tier
	if tier == "" {
		tier = company.TierBasic
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO company_profiles (user_id, name, tax_code, industry, size, address, description, tier, benefits, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			tax_code = EXCLUDED.tax_code,
			industry = EXCLUDED.industry,
			size = EXCLUDED.size,
			address = EXCLUDED.address,
			description = EXCLUDED.description,
			tier = EXCLUDED.tier,
			benefits = EXCLUDED.benefits,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.Name, p.TaxCode, p.Industry, p.Size, p.Address, p.Description,
		string(tier), p.Benefits, time.Now().UTC(),
	)
	return err
}

func (r *PostgresCompanyRepository) SetVerified(ctx context.Context, userID uuid.UUID, verifiedAt time.Time) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE company_profiles SET verified = TRUE, verified_at = $2, updated_at = now() WHERE user_id = $1`,
		userID, verifiedAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) List(ctx context.Context, onlyUnverified bool, limit, offset int) ([]company.Profile, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	q := `SELECT ` + companyColumns + ` FROM company_profiles`
	if onlyUnverified {
		q += ` WHERE verified = FALSE`
	}
	q += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Profile, 0)
	for rows.Next() {
		p, err := scanCompany(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCompany(scan func(dest ...any) error) (company.Profile, error) {
	var p company.Profile
	var tier string
	err := scan(&p.UserID, &p.Name, &p.TaxCode, &p.Industry, &p.Size, &p.Address, &p.Description,
		&p.Verified, &p.VerifiedAt, &tier, &p.Benefits, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return company.Profile{}, err
	}
	p.Tier = company.Tier(tier)
	return p, nil
}
