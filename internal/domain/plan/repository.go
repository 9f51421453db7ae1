package plan

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("service package not found")

type Repository interface {
	List(ctx context.Context) ([]ServicePackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (ServicePackage, error)
}
