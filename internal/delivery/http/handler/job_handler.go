package handler

import (
	"career-bridge/internal/delivery/http/dto"
	"career-bridge/internal/delivery/http/middleware"
	"career-bridge/internal/domain/job"
	"career-bridge/internal/pkg/response"
	"career-bridge/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterPublicRoutes mounts the unauthenticated browse endpoints.
func (h *JobHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
}

// RegisterEmployerRoutes mounts the employer-scoped CRUD endpoints. The
// caller wires role enforcement in front of this group.
func (h *JobHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.ListOwn)
	r.Post("/jobs", h.Create)
	r.Put("/jobs/:id", h.Update)
	r.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	f := job.ListFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Category: c.Query("category"),
		Level:    c.Query("level"),
		WorkType: c.Query("work_type"),
		Limit:    queryInt(c, "limit", 20),
		Offset:   queryInt(c, "offset", 0),
	}

	items, err := h.uc.ListPublic(c.Context(), f)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(items))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.GetPublic(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !j.Visible() {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) ListOwn(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListByEmployer(c.Context(), employerID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(items))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Create(c.Context(), employerID, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job created", dto.NewJobResponse(j))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.Update(c.Context(), employerID, id, req.ToInput())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated", dto.NewJobResponse(j))
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	employerID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), employerID, id); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}
