package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"career-bridge/internal/domain/candidate"
	"career-bridge/internal/domain/company"

	"github.com/google/uuid"
)

type CandidateProfileInput struct {
	Bio                *string
	Skills             []string
	ExpectedSalary     *int64
	PreferredLocations []string
	Experience         []candidate.HistoryEntry
	Education          []candidate.HistoryEntry
}

type CompanyProfileInput struct {
	Name        *string
	TaxCode     *string
	Industry    *string
	Size        *string
	Address     *string
	Description *string
	Tier        *company.Tier
	Benefits    []string
}

type ProfileUsecase interface {
	GetCandidate(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	UpdateCandidate(ctx context.Context, userID uuid.UUID, in CandidateProfileInput) (candidate.Profile, error)
	UploadCV(ctx context.Context, userID uuid.UUID, filename string) (string, error)
	GetCompany(ctx context.Context, userID uuid.UUID) (company.Profile, error)
	UpdateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (company.Profile, error)
}

type Profiles struct {
	candidates candidate.Repository
	companies  company.Repository
	cvBaseURL  string
}

func NewProfileUsecase(candidates candidate.Repository, companies company.Repository, cvBaseURL string) *Profiles {
	if strings.TrimSpace(cvBaseURL) == "" {
		cvBaseURL = "/uploads/cv"
	}
	return &Profiles{candidates: candidates, companies: companies, cvBaseURL: cvBaseURL}
}

func (u *Profiles) GetCandidate(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	p, err := u.candidates.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			// A candidate without a saved profile still has one, it is
			// just empty.
			return candidate.Profile{UserID: userID}, nil
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

// UpdateCandidate merges the provided fields into the stored profile. List
// fields replace wholesale: sending skills overwrites the whole list.
func (u *Profiles) UpdateCandidate(ctx context.Context, userID uuid.UUID, in CandidateProfileInput) (candidate.Profile, error) {
	p, err := u.GetCandidate(ctx, userID)
	if err != nil {
		return candidate.Profile{}, err
	}

	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Skills != nil {
		p.Skills = trimAll(in.Skills)
	}
	if in.ExpectedSalary != nil {
		if *in.ExpectedSalary < 0 {
			return candidate.Profile{}, ErrInvalidInput
		}
		p.ExpectedSalary = *in.ExpectedSalary
	}
	if in.PreferredLocations != nil {
		p.PreferredLocations = trimAll(in.PreferredLocations)
	}
	if in.Experience != nil {
		p.Experience = in.Experience
	}
	if in.Education != nil {
		p.Education = in.Education
	}

	if err := u.candidates.Upsert(ctx, p); err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

// UploadCV records where the candidate's CV lives. Byte storage is handled
// by the upload proxy in front of this service; here only the URL is kept.
func (u *Profiles) UploadCV(ctx context.Context, userID uuid.UUID, filename string) (string, error) {
	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		return "", ErrInvalidInput
	}

	url := fmt.Sprintf("%s/%s_%s", strings.TrimRight(u.cvBaseURL, "/"), uuid.NewString(), filename)

	if err := u.candidates.SetCVURL(ctx, userID, url); err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			p := candidate.Profile{UserID: userID, CVURL: url}
			if err := u.candidates.Upsert(ctx, p); err != nil {
				return "", ErrInternal
			}
			return url, nil
		}
		return "", ErrInternal
	}
	return url, nil
}

func (u *Profiles) GetCompany(ctx context.Context, userID uuid.UUID) (company.Profile, error) {
	p, err := u.companies.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Profile{UserID: userID, Tier: company.TierBasic}, nil
		}
		return company.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) UpdateCompany(ctx context.Context, userID uuid.UUID, in CompanyProfileInput) (company.Profile, error) {
	p, err := u.GetCompany(ctx, userID)
	if err != nil {
		return company.Profile{}, err
	}

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return company.Profile{}, ErrInvalidInput
		}
		p.Name = n
	}
	if in.TaxCode != nil {
		p.TaxCode = strings.TrimSpace(*in.TaxCode)
	}
	if in.Industry != nil {
		p.Industry = strings.TrimSpace(*in.Industry)
	}
	if in.Size != nil {
		p.Size = strings.TrimSpace(*in.Size)
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Tier != nil {
		if !in.Tier.Valid() {
			return company.Profile{}, ErrInvalidInput
		}
		p.Tier = *in.Tier
	}
	if in.Benefits != nil {
		p.Benefits = trimAll(in.Benefits)
	}

	// Verification state is admin-owned; Upsert never touches it.
	if err := u.companies.Upsert(ctx, p); err != nil {
		return company.Profile{}, ErrInternal
	}
	return p, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
