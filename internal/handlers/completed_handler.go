package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CompletedHandler struct {
	completedService *services.CompletedService
}

func NewCompletedHandler(completedService *services.CompletedService) *CompletedHandler {
	return &CompletedHandler{completedService: completedService}
}

// List handles GET /api/completed?sub=.
func (h *CompletedHandler) List(c *fiber.Ctx) error {
	sub := c.Query("sub")
	if !middleware.CanAccessSubject(c, sub) {
		return forbidden(c)
	}

	entries, err := h.completedService.ListCompleted(c.UserContext(), sub)
	if err != nil {
		if errors.Is(err, services.ErrSubRequired) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, "An error occurred while fetching completed tasks", err, "sub", sub)
	}

	return c.JSON(entries)
}

// Create handles POST /api/completed.
func (h *CompletedHandler) Create(c *fiber.Ctx) error {
	var req dto.RecordCompletedRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !middleware.CanAccessSubject(c, req.Sub) {
		return forbidden(c)
	}

	completed, err := h.completedService.RecordCompletedTasks(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrSubRequired) ||
			errors.Is(err, services.ErrNoTasks) ||
			errors.Is(err, services.ErrInvalidDate) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, "An error occurred while adding the completed tasks", err,
			"sub", req.Sub, "action", "record_completed")
	}

	return c.Status(fiber.StatusCreated).JSON(completed)
}
