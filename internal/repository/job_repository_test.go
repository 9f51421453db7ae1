package repository

import (
	"strings"
	"testing"

	"career-bridge/internal/domain/job"

	"github.com/google/uuid"
)

func TestBuildListQuery_NoFilter(t *testing.T) {
	q, args := buildListQuery(job.ListFilter{})

	if strings.Contains(q, "WHERE") {
		t.Fatalf("empty filter must not emit a WHERE clause: %s", q)
	}
	if !strings.Contains(q, "ORDER BY j.posted_at DESC") {
		t.Fatalf("listing must be newest-first: %s", q)
	}
	// Default limit and offset.
	if len(args) != 2 || args[0] != 20 || args[1] != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildListQuery_ComposesPredicatesWithAnd(t *testing.T) {
	employerID := uuid.New()
	q, args := buildListQuery(job.ListFilter{
		Search:     "go",
		Location:   "remote",
		Category:   "software-development",
		EmployerID: &employerID,
	})

	for _, frag := range []string{
		"j.title ILIKE $1",
		"j.location = $2",
		"j.category = $3",
		"j.employer_id = $4",
	} {
		if !strings.Contains(q, frag) {
			t.Fatalf("missing %q in %s", frag, q)
		}
	}
	if strings.Count(q, " AND ") < 3 {
		t.Fatalf("predicates must compose as AND: %s", q)
	}
	if args[0] != "%go%" {
		t.Fatalf("search must be a substring match, got %v", args[0])
	}
}

func TestBuildListQuery_VisibilityFilter(t *testing.T) {
	q, _ := buildListQuery(job.ListFilter{OnlyVisible: true})

	if !strings.Contains(q, "j.status = 'active'") || !strings.Contains(q, "j.approval_status = 'approved'") {
		t.Fatalf("visible listing must require active and approved: %s", q)
	}
}

func TestBuildListQuery_ClampsLimit(t *testing.T) {
	_, args := buildListQuery(job.ListFilter{Limit: 1000, Offset: -5})

	if args[len(args)-2] != 100 {
		t.Fatalf("limit must clamp to 100, got %v", args[len(args)-2])
	}
	if args[len(args)-1] != 0 {
		t.Fatalf("negative offset must clamp to 0, got %v", args[len(args)-1])
	}
}

func TestBuildListQuery_CountsApplicationsInline(t *testing.T) {
	q, _ := buildListQuery(job.ListFilter{})

	if !strings.Contains(q, "SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id") {
		t.Fatalf("applications count must be derived, not read from a stored column: %s", q)
	}
}
