package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/notifications", h.List)
	r.Post("/notifications/:id/read", h.MarkRead)
	r.Post("/notifications/read-all", h.MarkAllRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, unread, err := h.uc.ListByUser(c.Context(), userID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewNotificationListResponse(items, unread))
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), id, userID); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	n, err := h.uc.MarkAllRead(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "All notifications marked read", dto.MarkAllReadResponse{Marked: n})
}
