package usecase

import (
	"strings"
	"testing"

	"career-bridge/internal/domain/job"
)

func TestJobListCacheKey_NormalizesSearchInput(t *testing.T) {
	a := JobListCacheKey(job.ListFilter{Search: "  Backend   Engineer ", Limit: 20})
	b := JobListCacheKey(job.ListFilter{Search: "backend engineer", Limit: 20})
	if a != b {
		t.Fatalf("whitespace and case must not change the key: %s vs %s", a, b)
	}
}

func TestJobListCacheKey_DiffersByFilter(t *testing.T) {
	base := JobListCacheKey(job.ListFilter{Search: "go", Limit: 20})
	byOffset := JobListCacheKey(job.ListFilter{Search: "go", Limit: 20, Offset: 20})
	byLocation := JobListCacheKey(job.ListFilter{Search: "go", Location: "remote", Limit: 20})

	if base == byOffset || base == byLocation {
		t.Fatalf("distinct filters must produce distinct keys")
	}
}

func TestJobListLockKey_SharesHashWithListKey(t *testing.T) {
	listKey := JobListCacheKey(job.ListFilter{Search: "go", Limit: 20})
	lockKey := JobListLockKey(listKey)

	if !strings.HasPrefix(lockKey, "jobs:lock:") {
		t.Fatalf("unexpected lock key prefix: %s", lockKey)
	}
	if strings.TrimPrefix(lockKey, "jobs:lock:") != strings.TrimPrefix(listKey, "jobs:list:") {
		t.Fatalf("lock key must reuse the list key hash")
	}
}
