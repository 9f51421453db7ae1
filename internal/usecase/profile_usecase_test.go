package usecase

import (
	"context"
	"strings"
	"testing"

	"career-bridge/internal/domain/candidate"
	"career-bridge/internal/domain/company"

	"github.com/google/uuid"
)

func TestProfileUsecase_GetCandidate_MissingProfileIsEmptyNotError(t *testing.T) {
	uc := NewProfileUsecase(newMockCandidateRepo(), newMockCompanyRepo(), "")

	userID := uuid.New()
	p, err := uc.GetCandidate(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.UserID != userID {
		t.Fatalf("expected profile bound to user")
	}
	if p.Bio != "" || len(p.Skills) != 0 {
		t.Fatalf("expected empty profile, got %+v", p)
	}
}

func TestProfileUsecase_UpdateCandidate_MergesFields(t *testing.T) {
	candidates := newMockCandidateRepo()
	uc := NewProfileUsecase(candidates, newMockCompanyRepo(), "")

	userID := uuid.New()
	candidates.profiles[userID] = candidate.Profile{
		UserID:         userID,
		Bio:            "old bio",
		Skills:         []string{"Go"},
		ExpectedSalary: 50_000,
	}

	bio := "  new bio  "
	p, err := uc.UpdateCandidate(context.Background(), userID, CandidateProfileInput{
		Bio:    &bio,
		Skills: []string{" Go ", "", "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if p.Bio != "new bio" {
		t.Fatalf("expected trimmed bio, got %q", p.Bio)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "Go" || p.Skills[1] != "PostgreSQL" {
		t.Fatalf("skills replace wholesale with blanks dropped, got %v", p.Skills)
	}
	if p.ExpectedSalary != 50_000 {
		t.Fatalf("untouched fields must survive, got %d", p.ExpectedSalary)
	}
}

func TestProfileUsecase_UpdateCandidate_NegativeSalaryRejected(t *testing.T) {
	uc := NewProfileUsecase(newMockCandidateRepo(), newMockCompanyRepo(), "")

	salary := int64(-1)
	_, err := uc.UpdateCandidate(context.Background(), uuid.New(), CandidateProfileInput{ExpectedSalary: &salary})
	if err == nil {
		t.Fatalf("expected rejection of negative salary")
	}
}

func TestProfileUsecase_UploadCV_BuildsUniqueURL(t *testing.T) {
	candidates := newMockCandidateRepo()
	uc := NewProfileUsecase(candidates, newMockCompanyRepo(), "/uploads/cv")

	userID := uuid.New()
	candidates.profiles[userID] = candidate.Profile{UserID: userID}

	url, err := uc.UploadCV(context.Background(), userID, "../../etc/resume.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/cv/") {
		t.Fatalf("unexpected url prefix: %s", url)
	}
	if !strings.HasSuffix(url, "_resume.pdf") {
		t.Fatalf("path components must be stripped from the filename: %s", url)
	}
	if candidates.profiles[userID].CVURL != url {
		t.Fatalf("url must be persisted on the profile")
	}
}

func TestProfileUsecase_UploadCV_CreatesProfileWhenMissing(t *testing.T) {
	candidates := newMockCandidateRepo()
	uc := NewProfileUsecase(candidates, newMockCompanyRepo(), "")

	userID := uuid.New()
	url, err := uc.UploadCV(context.Background(), userID, "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if candidates.profiles[userID].CVURL != url {
		t.Fatalf("expected profile to be created with the cv url")
	}
}

func TestProfileUsecase_UpdateCompany_NeverTouchesVerification(t *testing.T) {
	companies := newMockCompanyRepo()
	uc := NewProfileUsecase(newMockCandidateRepo(), companies, "")

	userID := uuid.New()
	companies.profiles[userID] = company.Profile{UserID: userID, Name: "Acme", Verified: true, Tier: company.TierPro}

	name := "Acme Corp"
	p, err := uc.UpdateCompany(context.Background(), userID, CompanyProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !p.Verified {
		t.Fatalf("profile update must not clear verification")
	}
	if p.Name != "Acme Corp" {
		t.Fatalf("expected updated name, got %q", p.Name)
	}
}

func TestProfileUsecase_UpdateCompany_InvalidTierRejected(t *testing.T) {
	uc := NewProfileUsecase(newMockCandidateRepo(), newMockCompanyRepo(), "")

	tier := company.Tier("platinum")
	_, err := uc.UpdateCompany(context.Background(), uuid.New(), CompanyProfileInput{Tier: &tier})
	if err == nil {
		t.Fatalf("expected invalid tier rejection")
	}
}
