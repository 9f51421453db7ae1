package dto

import (
	"career-bridge/internal/domain/plan"
	"career-bridge/internal/domain/taxonomy"
)

type FacetResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	JobCount int64  `json:"job_count"`
}

func NewCategoryListResponse(items []taxonomy.Category) []FacetResponse {
	out := make([]FacetResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FacetResponse{ID: c.ID.String(), Name: c.Name, Slug: c.Slug, JobCount: c.JobCount})
	}
	return out
}

func NewLocationListResponse(items []taxonomy.Location) []FacetResponse {
	out := make([]FacetResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FacetResponse{ID: l.ID.String(), Name: l.Name, Slug: l.Slug, JobCount: l.JobCount})
	}
	return out
}

type ServicePackageResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tier          string   `json:"tier"`
	Price         int64    `json:"price"`
	DurationDays  int      `json:"duration_days"`
	Features      []string `json:"features"`
	JobPostLimit  int      `json:"job_post_limit"`
	FeaturedLimit int      `json:"featured_limit"`
	CVViewLimit   int      `json:"cv_view_limit"`
	Popular       bool     `json:"popular"`
}

func NewServicePackageListResponse(items []plan.ServicePackage) []ServicePackageResponse {
	out := make([]ServicePackageResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ServicePackageResponse{
			ID:            p.ID.String(),
			Name:          p.Name,
			Tier:          p.Tier,
			Price:         p.Price,
			DurationDays:  p.DurationDays,
			Features:      emptyIfNil(p.Features),
			JobPostLimit:  p.JobPostLimit,
			FeaturedLimit: p.FeaturedLimit,
			CVViewLimit:   p.CVViewLimit,
			Popular:       p.Popular,
		})
	}
	return out
}
