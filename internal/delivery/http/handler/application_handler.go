package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/applications", h.Apply)
	r.Get("/applications", h.ListOwn)
	r.Post("/applications/:id/withdraw", h.Withdraw)
}

func (h *ApplicationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:id/applications", h.ListByJob)
	r.Put("/applications/:id", h.Review)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	candidateID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job_id", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), candidateID, jobID, req.CoverLetter)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) ListOwn(c fiber.Ctx) error {
	candidateID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListByCandidate(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(items))
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByJob(c.Context(), employerID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(items))
}

func (h *ApplicationHandler) Review(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ReviewApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Review(c.Context(), employerID, id, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application updated", dto.NewApplicationResponse(a))
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	candidateID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.Withdraw(c.Context(), candidateID, id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application withdrawn", dto.NewApplicationResponse(a))
}
