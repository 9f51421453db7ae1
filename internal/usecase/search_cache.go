package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"career-bridge/internal/domain/job"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type jobListCacheKeyInput struct {
	Search   string `json:"search"`
	Location string `json:"location"`
	Category string `json:"category"`
	Level    string `json:"level"`
	WorkType string `json:"work_type"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// JobListCacheKey hashes the normalized public filter set. Only public
// listings are cached; employer and admin views always hit the database.
func JobListCacheKey(f job.ListFilter) string {
	in := jobListCacheKeyInput{
		Search:   normalizeSearchValue(f.Search),
		Location: normalizeSearchValue(f.Location),
		Category: normalizeSearchValue(f.Category),
		Level:    normalizeSearchValue(f.Level),
		WorkType: normalizeSearchValue(f.WorkType),
		Limit:    f.Limit,
		Offset:   f.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:list:" + hex.EncodeToString(sum[:])
}

func JobListLockKey(listKey string) string {
	return "jobs:lock:" + strings.TrimPrefix(listKey, "jobs:list:")
}
