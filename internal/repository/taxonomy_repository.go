package repository

import (
	"context"

	"career-bridge/internal/database"
	"career-bridge/internal/domain/taxonomy"
)

type PostgresTaxonomyRepository struct {
	db database.DB
}

func NewPostgresTaxonomyRepository(db database.DB) *PostgresTaxonomyRepository {
	return &PostgresTaxonomyRepository{db: db}
}

// Counts cover publicly visible jobs only, so the browse facets agree with
// what a candidate actually sees in the listing.
func (r *PostgresTaxonomyRepository) ListCategories(ctx context.Context) ([]taxonomy.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.slug,
			(SELECT COUNT(*) FROM jobs j
			 WHERE j.category = c.name AND j.status = 'active' AND j.approval_status = 'approved')
		 FROM categories c ORDER BY c.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Category, 0)
	for rows.Next() {
		var c taxonomy.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.JobCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTaxonomyRepository) ListLocations(ctx context.Context) ([]taxonomy.Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT l.id, l.name, l.slug,
			(SELECT COUNT(*) FROM jobs j
			 WHERE j.location = l.name AND j.status = 'active' AND j.approval_status = 'approved')
		 FROM locations l ORDER BY l.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]taxonomy.Location, 0)
	for rows.Next() {
		var l taxonomy.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Slug, &l.JobCount); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
