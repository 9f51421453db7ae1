package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/categories", h.Categories)
	r.Get("/locations", h.Locations)
	r.Get("/packages", h.Packages)
}

func (h *CatalogHandler) Categories(c fiber.Ctx) error {
	items, err := h.uc.Categories(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCategoryListResponse(items))
}

func (h *CatalogHandler) Locations(c fiber.Ctx) error {
	items, err := h.uc.Locations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLocationListResponse(items))
}

func (h *CatalogHandler) Packages(c fiber.Ctx) error {
	items, err := h.uc.Packages(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewServicePackageListResponse(items))
}
