package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetCandidate)
	r.Put("/profile", h.UpdateCandidate)
	r.Post("/profile/cv", h.UploadCV)
}

func (h *ProfileHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetCompany)
	r.Put("/profile", h.UpdateCompany)
}

func (h *ProfileHandler) GetCandidate(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetCandidate(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateProfileResponse(p))
}

func (h *ProfileHandler) UpdateCandidate(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCandidateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateCandidate(c.Context(), userID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewCandidateProfileResponse(p))
}

func (h *ProfileHandler) UploadCV(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UploadCVRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	url, err := h.uc.UploadCV(c.Context(), userID, req.Filename)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "CV uploaded", fiber.Map{"cv_url": url})
}

func (h *ProfileHandler) GetCompany(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetCompany(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyProfileResponse(p))
}

func (h *ProfileHandler) UpdateCompany(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCompanyProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.UpdateCompany(c.Context(), userID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewCompanyProfileResponse(p))
}
