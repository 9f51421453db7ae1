package seeder

import (
	"context"
	"fmt"

	"career-bridge/internal/database"
)

type CategoriesSeeder struct{}

func (CategoriesSeeder) Name() string { return "categories" }

func (CategoriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "categories", "id", "name", "slug"); err != nil {
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
		Name string
		Slug string
	}{
		{Name: "Software Development", Slug: "software-development"},
		{Name: "Design", Slug: "design"},
		{Name: "Marketing", Slug: "marketing"},
		{Name: "Sales", Slug: "sales"},
		{Name: "Finance", Slug: "finance"},
		{Name: "Human Resources", Slug: "human-resources"},
		{Name: "Customer Support", Slug: "customer-support"},
		{Name: "Operations", Slug: "operations"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO categories (id, name, slug) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (slug) DO NOTHING`,
			it.Name,
			it.Slug,
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

type LocationsSeeder struct{}

func (LocationsSeeder) Name() string { return "locations" }

func (LocationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "locations", "id", "name", "slug"); err != nil {
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
		Name string
		Slug string
	}{
		{Name: "Remote", Slug: "remote"},
		{Name: "New York", Slug: "new-york"},
		{Name: "San Francisco", Slug: "san-francisco"},
		{Name: "London", Slug: "london"},
		{Name: "Berlin", Slug: "berlin"},
		{Name: "Singapore", Slug: "singapore"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO locations (id, name, slug) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (slug) DO NOTHING`,
			it.Name,
			it.Slug,
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
