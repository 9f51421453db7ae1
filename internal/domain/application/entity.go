package application

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	CoverLetter string
	Status      Status
	Notes       string
	Rating      int16
	AppliedAt   time.Time
	UpdatedAt   time.Time
}
