package repository

import (
	"context"
	"errors"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/plan"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresPlanRepository struct {
	db database.DB
}

func NewPostgresPlanRepository(db database.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{db: db}
}

const planColumns = `id, name, tier, price, duration_days, features, job_post_limit, featured_limit, cv_view_limit, popular`

func (r *PostgresPlanRepository) List(ctx context.Context) ([]plan.ServicePackage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+planColumns+` FROM service_packages ORDER BY price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]plan.ServicePackage, 0)
	for rows.Next() {
		var p plan.ServicePackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Tier, &p.Price, &p.DurationDays, &p.Features,
			&p.JobPostLimit, &p.FeaturedLimit, &p.CVViewLimit, &p.Popular); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (plan.ServicePackage, error) {
	var p plan.ServicePackage
	row := r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM service_packages WHERE id = $1`, id)
	err := row.Scan(&p.ID, &p.Name, &p.Tier, &p.Price, &p.DurationDays, &p.Features,
		&p.JobPostLimit, &p.FeaturedLimit, &p.CVViewLimit, &p.Popular)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return plan.ServicePackage{}, plan.ErrNotFound
		}
		return plan.ServicePackage{}, err
	}
	return p, nil
}
