package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Update handles PUT /api/tasks/:taskId.
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	// An id that is not a UUID cannot name a stored task.
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Task not found")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if allowed, err := h.canAccessTask(c, taskID); err != nil {
		return internalError(c, "An error occurred while updating the task", err, "task_id", taskID.String())
	} else if !allowed {
		return forbidden(c)
	}

	slog.Info("attempting to update task", "task_id", taskID.String())

	task, err := h.taskService.UpdateTask(c.UserContext(), taskID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Task not found")
		}
		if errors.Is(err, services.ErrTaskNotToday) {
			return errorJSON(c, fiber.StatusBadRequest, "Can only update tasks created today")
		}
		return internalError(c, "An error occurred while updating the task", err,
			"task_id", taskID.String(), "action", "update_task")
	}

	return c.JSON(task)
}

// Delete handles DELETE /api/tasks/:taskId.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("taskId"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "Task not found")
	}
	if allowed, err := h.canAccessTask(c, taskID); err != nil {
		return internalError(c, "An error occurred while deleting the task", err, "task_id", taskID.String())
	} else if !allowed {
		return forbidden(c)
	}

	slog.Info("attempting to delete task", "task_id", taskID.String())

	if err := h.taskService.DeleteTask(c.UserContext(), taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Task not found")
		}
		if errors.Is(err, services.ErrTaskNotToday) {
			return errorJSON(c, fiber.StatusBadRequest, "Can only delete tasks created today")
		}
		return internalError(c, "An error occurred while deleting the task", err,
			"task_id", taskID.String(), "action", "delete_task")
	}

	slog.Info("task deleted", "task_id", taskID.String())
	return c.JSON(dto.MessageResponse{Message: "Task deleted successfully"})
}

// canAccessTask compares the token's sub with the owner of the task. Unowned
// or missing tasks pass through so the service can report them.
func (h *TaskHandler) canAccessTask(c *fiber.Ctx, taskID uuid.UUID) (bool, error) {
	sub, ok := middleware.Subject(c)
	if !ok {
		return true, nil
	}
	owner, err := h.taskService.TaskOwner(c.UserContext(), taskID)
	if err != nil {
		return false, err
	}
	return owner == "" || owner == sub, nil
}
