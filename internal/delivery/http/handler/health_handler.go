package handler

import (
	"career-bridge/internal/infrastructure/cache"
	"career-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	cache *cache.Redis
}

func NewHealthHandler(cacheClient *cache.Redis) *HealthHandler {
	return &HealthHandler{cache: cacheClient}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	cacheStatus := "disabled"
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err == nil {
			cacheStatus = "up"
		} else {
			cacheStatus = "down"
		}
	}

	return response.Success(c, fiber.StatusOK, "ok", fiber.Map{
		"service": "career-bridge",
		"cache":   cacheStatus,
	})
}
