package dto

import (
	"time"

	"career-bridge/internal/domain/candidate"
	"career-bridge/internal/domain/company"
	"career-bridge/internal/usecase"
)

type HistoryEntryPayload struct {
	Title       string `json:"title"`
	Place       string `json:"place"`
	From        string `json:"from"`
	To          string `json:"to"`
	Description string `json:"description"`
}

type UpdateCandidateProfileRequest struct {
	Bio                *string               `json:"bio"`
	Skills             []string              `json:"skills"`
	ExpectedSalary     *int64                `json:"expected_salary"`
	PreferredLocations []string              `json:"preferred_locations"`
	Experience         []HistoryEntryPayload `json:"experience"`
	Education          []HistoryEntryPayload `json:"education"`
}

func (r UpdateCandidateProfileRequest) ToInput() usecase.CandidateProfileInput {
	return usecase.CandidateProfileInput{
		Bio:                r.Bio,
		Skills:             r.Skills,
		ExpectedSalary:     r.ExpectedSalary,
		PreferredLocations: r.PreferredLocations,
		Experience:         toHistoryEntries(r.Experience),
		Education:          toHistoryEntries(r.Education),
	}
}

type UploadCVRequest struct {
	Filename string `json:"filename"`
}

type CandidateProfileResponse struct {
	UserID             string                `json:"user_id"`
	Bio                string                `json:"bio,omitempty"`
	Skills             []string              `json:"skills"`
	ExpectedSalary     int64                 `json:"expected_salary"`
	PreferredLocations []string              `json:"preferred_locations"`
	CVURL              string                `json:"cv_url,omitempty"`
	Experience         []HistoryEntryPayload `json:"experience"`
	Education          []HistoryEntryPayload `json:"education"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

func NewCandidateProfileResponse(p candidate.Profile) CandidateProfileResponse {
	return CandidateProfileResponse{
		UserID:             p.UserID.String(),
		Bio:                p.Bio,
		Skills:             emptyIfNil(p.Skills),
		ExpectedSalary:     p.ExpectedSalary,
		PreferredLocations: emptyIfNil(p.PreferredLocations),
		CVURL:              p.CVURL,
		Experience:         fromHistoryEntries(p.Experience),
		Education:          fromHistoryEntries(p.Education),
		UpdatedAt:          p.UpdatedAt,
	}
}

type UpdateCompanyProfileRequest struct {
	Name        *string  `json:"name"`
	TaxCode     *string  `json:"tax_code"`
	Industry    *string  `json:"industry"`
	Size        *string  `json:"size"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	Tier        *string  `json:"tier"`
	Benefits    []string `json:"benefits"`
}

func (r UpdateCompanyProfileRequest) ToInput() usecase.CompanyProfileInput {
	in := usecase.CompanyProfileInput{
		Name:        r.Name,
		TaxCode:     r.TaxCode,
		Industry:    r.Industry,
		Size:        r.Size,
		Address:     r.Address,
		Description: r.Description,
		Benefits:    r.Benefits,
	}
	if r.Tier != nil {
		t := company.Tier(*r.Tier)
		in.Tier = &t
	}
	return in
}

type CompanyProfileResponse struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	TaxCode     string     `json:"tax_code,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	Size        string     `json:"size,omitempty"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	Verified    bool       `json:"verified"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	Tier        string     `json:"tier"`
	Benefits    []string   `json:"benefits"`
}

func NewCompanyProfileResponse(p company.Profile) CompanyProfileResponse {
	return CompanyProfileResponse{
		UserID:      p.UserID.String(),
		Name:        p.Name,
		TaxCode:     p.TaxCode,
		Industry:    p.Industry,
		Size:        p.Size,
		Address:     p.Address,
		Description: p.Description,
		Verified:    p.Verified,
		VerifiedAt:  p.VerifiedAt,
		Tier:        string(p.Tier),
		Benefits:    emptyIfNil(p.Benefits),
	}
}

func NewCompanyListResponse(items []company.Profile) []CompanyProfileResponse {
	out := make([]CompanyProfileResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewCompanyProfileResponse(p))
	}
	return out
}

func toHistoryEntries(in []HistoryEntryPayload) []candidate.HistoryEntry {
	if in == nil {
		return nil
	}
	out := make([]candidate.HistoryEntry, 0, len(in))
	for _, e := range in {
		out = append(out, candidate.HistoryEntry(e))
	}
	return out
}

func fromHistoryEntries(in []candidate.HistoryEntry) []HistoryEntryPayload {
	out := make([]HistoryEntryPayload, 0, len(in))
	for _, e := range in {
		out = append(out, HistoryEntryPayload(e))
	}
	return out
}
