package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/stats", h.Stats)
	r.Get("/jobs/pending", h.ListPendingJobs)
	r.Post("/jobs/:id/approval", h.DecideJobApproval)
	r.Get("/companies", h.ListCompanies)
	r.Post("/companies/:id/verify", h.VerifyCompany)
	r.Put("/users/:id/active", h.SetUserActive)
}

func (h *AdminHandler) Stats(c fiber.Ctx) error {
	s, err := h.uc.Stats(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPlatformStatsResponse(s))
}

func (h *AdminHandler) ListPendingJobs(c fiber.Ctx) error {
	items, err := h.uc.ListPendingJobs(c.Context(), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(items))
}

func (h *AdminHandler) DecideJobApproval(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobApprovalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.DecideJobApproval(c.Context(), id, job.ApprovalStatus(req.Decision))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job moderation recorded", dto.NewJobResponse(j))
}

func (h *AdminHandler) ListCompanies(c fiber.Ctx) error {
	onlyUnverified := c.Query("unverified") == "true"

	items, err := h.uc.ListCompanies(c.Context(), onlyUnverified, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyListResponse(items))
}

func (h *AdminHandler) VerifyCompany(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.VerifyCompany(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Company verified", dto.NewCompanyProfileResponse(p))
}

func (h *AdminHandler) SetUserActive(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.SetUserActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetUserActive(c.Context(), id, req.Active); err != nil {
		return mapUsecaseError(err)
	}

	msg := "User blocked"
	if req.Active {
		msg = "User unblocked"
	}
	return response.Success(c, fiber.StatusOK, msg, nil)
}
