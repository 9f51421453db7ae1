package seeder

import (
	"context"
	"fmt"

	"career-bridge/internal/database"
)

type ServicePackagesSeeder struct{}

func (ServicePackagesSeeder) Name() string { return "service_packages" }

func (ServicePackagesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "service_packages",
		"id", "name", "tier", "price", "duration_days", "features",
		"job_post_limit", "featured_limit", "cv_view_limit", "popular"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name          string
		Tier          string
		Price         int64
		DurationDays  int
		Features      []string
		JobPostLimit  int
		FeaturedLimit int
		CVViewLimit   int
		Popular       bool
	}{
		{
			Name:         "Starter",
			Tier:         "basic",
			Price:        0,
			DurationDays: 30,
			Features:     []string{"3 job postings", "Basic support"},
			JobPostLimit: 3,
			CVViewLimit:  20,
		},
		{
			Name:          "Growth",
			Tier:          "pro",
			Price:         99_00,
			DurationDays:  30,
			Features:      []string{"20 job postings", "5 featured slots", "Priority support"},
			JobPostLimit:  20,
			FeaturedLimit: 5,
			CVViewLimit:   200,
			Popular:       true,
		},
		{
			Name:          "Scale",
			Tier:          "enterprise",
			Price:         299_00,
			DurationDays:  30,
			Features:      []string{"Unlimited postings", "Unlimited featured slots", "Dedicated account manager"},
			FeaturedLimit: 0,
			CVViewLimit:   0,
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO service_packages
				(id, name, tier, price, duration_days, features, job_post_limit, featured_limit, cv_view_limit, popular)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Tier, it.Price, it.DurationDays, it.Features,
			it.JobPostLimit, it.FeaturedLimit, it.CVViewLimit, it.Popular,
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
