package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company profile not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
	SetVerified(ctx context.Context, userID uuid.UUID, verifiedAt time.Time) error
	List(ctx context.Context, onlyUnverified bool, limit, offset int) ([]Profile, error)
}
