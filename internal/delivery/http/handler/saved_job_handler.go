package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedJobHandler struct {
	uc usecase.SavedJobUsecase
}

func NewSavedJobHandler(uc usecase.SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{uc: uc}
}

func (h *SavedJobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/saved-jobs", h.List)
	r.Post("/saved-jobs/:jobId/toggle", h.Toggle)
}

func (h *SavedJobHandler) List(c fiber.Ctx) error {
	candidateID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListByCandidate(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSavedJobListResponse(items))
}

func (h *SavedJobHandler) Toggle(c fiber.Ctx) error {
	candidateID, err := currentUserID(c)
	if err != nil {
		return err
	}
	jobID, err := uuidParam(c, "jobId")
	if err != nil {
		return err
	}

	saved, err := h.uc.Toggle(c.Context(), candidateID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Job unsaved"
	if saved {
		msg = "Job saved"
	}
	return response.Success(c, fiber.StatusOK, msg, dto.ToggleSavedJobResponse{JobID: jobID.String(), Saved: saved})
}
