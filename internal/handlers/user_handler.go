package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Upsert handles POST /api/create-user.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	req, err := dto.ParseUpsertUser(c.Body())
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !middleware.CanAccessSubject(c, req.Sub) {
		return forbidden(c)
	}

	user, completed, err := h.userService.UpsertUser(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrSubRequired) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, "An error occurred while processing the user", err, "sub", req.Sub)
	}

	return c.JSON(dto.UpsertUserResponse{
		Message:        "User upserted successfully",
		UserID:         user.ID,
		CompletedTasks: completed,
	})
}

// WithTasks handles GET /api/users/withtasks?sub=.
func (h *UserHandler) WithTasks(c *fiber.Ctx) error {
	sub := c.Query("sub")
	if !middleware.CanAccessSubject(c, sub) {
		return forbidden(c)
	}

	user, err := h.userService.GetUserWithCompleted(c.UserContext(), sub)
	if err != nil {
		if errors.Is(err, services.ErrSubRequired) {
			return errorJSON(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "User not found")
		}
		return internalError(c, "An error occurred while fetching user data", err, "sub", sub)
	}

	return c.JSON(user)
}
