package candidate

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the candidate-facing attributes attached to a user with the
// candidate role. Experience and education are free-form history entries the
// candidate authors themselves.
type Profile struct {
	UserID             uuid.UUID
	Bio                string
	Skills             []string
	ExpectedSalary     int64
	PreferredLocations []string
	CVURL              string
	Experience         []HistoryEntry
	Education          []HistoryEntry
	UpdatedAt          time.Time
}

type HistoryEntry struct {
	Title       string `json:"title"`
	Place       string `json:"place"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}
