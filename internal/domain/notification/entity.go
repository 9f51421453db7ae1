package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeApplicationUpdate = "application_update"
	TypeJobApproval       = "job_approval"
	TypeCompanyVerified   = "company_verified"
	TypeSystem            = "system"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Title     string
	Message   string
	Link      string
	Read      bool
	CreatedAt time.Time
}
