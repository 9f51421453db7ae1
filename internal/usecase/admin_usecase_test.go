package usecase

import (
	"context"
	"errors"
	"testing"

	"career-bridge/internal/domain/company"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/domain/user"
	"career-bridge/internal/repository"

	"github.com/google/uuid"
)

func companyProfileFixture(userID uuid.UUID) company.Profile {
	return company.Profile{UserID: userID, Name: "Acme", Tier: company.TierBasic}
}

func newAdminUsecase(stats *mockStatsRepo, jobs *mockJobRepo, companies *mockCompanyRepo, users *mockUserRepo, cache *mockSearchCache) *Admin {
	notifs := &mockNotificationRepo{}
	var sc SearchCache
	if cache != nil {
		sc = cache
	}
	return NewAdminUsecase(stats, jobs, companies, users, notifs, sc, nil)
}

func TestAdminUsecase_Stats_RecountsEveryCall(t *testing.T) {
	total := int64(0)
	stats := &mockStatsRepo{collect: func() repository.PlatformStats {
		total++
		return repository.PlatformStats{TotalUsers: total}
	}}
	uc := newAdminUsecase(stats, newMockJobRepo(), newMockCompanyRepo(), newMockUserRepo(), nil)

	first, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if stats.calls != 2 {
		t.Fatalf("expected 2 collect calls, got %d", stats.calls)
	}
	if first.TotalUsers == second.TotalUsers {
		t.Fatalf("expected fresh counts per call")
	}
}

func TestAdminUsecase_DecideJobApproval_ApprovesPendingJob(t *testing.T) {
	jobs := newMockJobRepo()
	cache := newMockSearchCache()
	notifs := &mockNotificationRepo{}
	uc := NewAdminUsecase(&mockStatsRepo{}, jobs, newMockCompanyRepo(), newMockUserRepo(), notifs, cache, nil)

	employerID := uuid.New()
	j := job.Job{ID: uuid.New(), EmployerID: employerID, Title: "Pending", Status: job.StatusActive, ApprovalStatus: job.ApprovalPending}
	jobs.jobs[j.ID] = j

	got, err := uc.DecideJobApproval(context.Background(), j.ID, job.ApprovalApproved)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ApprovalStatus != job.ApprovalApproved {
		t.Fatalf("expected approved, got %s", got.ApprovalStatus)
	}
	if len(cache.deletedPatterns) != 1 {
		t.Fatalf("expected listing invalidation")
	}
	if len(notifs.created) != 1 || notifs.created[0].UserID != employerID {
		t.Fatalf("expected employer notification")
	}
}

func TestAdminUsecase_DecideJobApproval_DecisionIsFinal(t *testing.T) {
	jobs := newMockJobRepo()
	uc := newAdminUsecase(&mockStatsRepo{}, jobs, newMockCompanyRepo(), newMockUserRepo(), nil)

	j := job.Job{ID: uuid.New(), EmployerID: uuid.New(), ApprovalStatus: job.ApprovalRejected}
	jobs.jobs[j.ID] = j

	_, err := uc.DecideJobApproval(context.Background(), j.ID, job.ApprovalApproved)
	if !errors.Is(err, job.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAdminUsecase_SetUserActive_RefusesAdmins(t *testing.T) {
	users := newMockUserRepo()
	uc := newAdminUsecase(&mockStatsRepo{}, newMockJobRepo(), newMockCompanyRepo(), users, nil)

	admin := user.User{ID: uuid.New(), Email: "root@portal", Role: user.RoleAdmin, Active: true}
	users.users[admin.ID] = admin

	err := uc.SetUserActive(context.Background(), admin.ID, false)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !users.users[admin.ID].Active {
		t.Fatalf("admin account must stay active")
	}
}

func TestAdminUsecase_SetUserActive_BlocksCandidate(t *testing.T) {
	users := newMockUserRepo()
	uc := newAdminUsecase(&mockStatsRepo{}, newMockJobRepo(), newMockCompanyRepo(), users, nil)

	u := user.User{ID: uuid.New(), Email: "c@portal", Role: user.RoleCandidate, Active: true}
	users.users[u.ID] = u

	if err := uc.SetUserActive(context.Background(), u.ID, false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if users.users[u.ID].Active {
		t.Fatalf("expected user to be blocked")
	}
}

func TestAdminUsecase_VerifyCompany_StampsVerification(t *testing.T) {
	companies := newMockCompanyRepo()
	uc := newAdminUsecase(&mockStatsRepo{}, newMockJobRepo(), companies, newMockUserRepo(), nil)

	userID := uuid.New()
	companies.profiles[userID] = companyProfileFixture(userID)

	p, err := uc.VerifyCompany(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !p.Verified || p.VerifiedAt == nil {
		t.Fatalf("expected verification stamp, got %+v", p)
	}
}
