package plan

import "github.com/google/uuid"

// ServicePackage is an employer subscription offering. Limits of 0 mean
// unlimited for that dimension.
type ServicePackage struct {
	ID            uuid.UUID
	Name          string
	Tier          string
	Price         int64
	DurationDays  int
	Features      []string
	JobPostLimit  int
	FeaturedLimit int
	CVViewLimit   int
	Popular       bool
}
