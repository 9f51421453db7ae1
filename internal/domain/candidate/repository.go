package candidate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("candidate profile not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, p Profile) error
	SetCVURL(ctx context.Context, userID uuid.UUID, cvURL string) error
}
