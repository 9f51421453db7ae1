package usecase

import (
	"context"

	"career-bridge/internal/domain/plan"
	"career-bridge/internal/domain/taxonomy"
)

// CatalogUsecase serves the public browse facets: categories, locations and
// employer service packages.
type CatalogUsecase interface {
	Categories(ctx context.Context) ([]taxonomy.Category, error)
	Locations(ctx context.Context) ([]taxonomy.Location, error)
	Packages(ctx context.Context) ([]plan.ServicePackage, error)
}

type Catalog struct {
	taxonomy taxonomy.Repository
	plans    plan.Repository
}

func NewCatalogUsecase(taxonomyRepo taxonomy.Repository, plans plan.Repository) *Catalog {
	return &Catalog{taxonomy: taxonomyRepo, plans: plans}
}

func (u *Catalog) Categories(ctx context.Context) ([]taxonomy.Category, error) {
	items, err := u.taxonomy.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) Locations(ctx context.Context) ([]taxonomy.Location, error) {
	items, err := u.taxonomy.ListLocations(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Catalog) Packages(ctx context.Context) ([]plan.ServicePackage, error) {
	items, err := u.plans.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
