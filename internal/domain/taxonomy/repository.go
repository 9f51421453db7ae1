package taxonomy

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListLocations(ctx context.Context) ([]Location, error)
}
