package taxonomy

import "github.com/google/uuid"

// Category and Location are browse facets for the job board. JobCount is
// recomputed from visible jobs at query time rather than kept as a stored
// counter that can drift.
type Category struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	JobCount int64
}

type Location struct {
	ID       uuid.UUID
	Name     string
	Slug     string
	JobCount int64
}
