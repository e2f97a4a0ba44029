package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	db *gorm.DB
	calendar
}

func NewTaskService(db *gorm.DB, loc *time.Location, opts ...Option) *TaskService {
	return &TaskService{db: db, calendar: newCalendar(loc, opts)}
}

// UpdateTask applies the provided fields to a task created today.
func (s *TaskService) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	db := s.db.WithContext(ctx)

	task, err := findTask(db, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.checkToday(task, "update"); err != nil {
		return nil, err
	}

	if req.From != nil {
		task.From = *req.From
	}
	if req.To != nil {
		task.To = *req.To
	}
	if req.Duration != nil {
		task.Duration = *req.Duration
	}
	if req.Topic != nil {
		task.Topic = *req.Topic
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	if err := db.Save(task).Error; err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task created today and detaches it from its daily
// entry. The entry is deleted along with its last task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findTask(tx, taskID)
		if err != nil {
			return err
		}
		if err := s.checkToday(task, "delete"); err != nil {
			return err
		}

		if err := tx.Delete(task).Error; err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if task.CompletedID == nil {
			return nil
		}

		completedID := *task.CompletedID
		var remaining int64
		if err := tx.Model(&models.Task{}).Where("completed_id = ?", completedID).Count(&remaining).Error; err != nil {
			return fmt.Errorf("failed to count remaining tasks: %w", err)
		}

		if remaining == 0 {
			if err := tx.Delete(&models.Completed{}, "id = ?", completedID).Error; err != nil {
				return fmt.Errorf("failed to delete empty completed entry: %w", err)
			}
			slog.Info("deleted empty completed entry", "task_id", taskID.String(), "completed_id", completedID.String())
			return nil
		}

		slog.Info("task removed from completed entry",
			"task_id", taskID.String(),
			"completed_id", completedID.String(),
			"remaining", remaining,
		)
		return nil
	})
}

func (s *TaskService) checkToday(task *models.Task, action string) error {
	today := s.today()
	created := task.CreatedAt.In(s.loc)
	if IsSameCalendarDay(created, today, s.loc) {
		return nil
	}
	slog.Info("task change rejected, not created today",
		"action", action,
		"task_id", task.ID.String(),
		"created_on", created.Format(dateLayout),
		"today", today.Format(dateLayout),
	)
	return ErrTaskNotToday
}

func findTask(db *gorm.DB, taskID uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// TaskOwner returns the sub of the entry owning taskID, or "" when the task
// does not exist or has no owner.
func (s *TaskService) TaskOwner(ctx context.Context, taskID uuid.UUID) (string, error) {
	var owners []string
	err := s.db.WithContext(ctx).
		Model(&models.Completed{}).
		Joins("JOIN tasks ON tasks.completed_id = completed.id").
		Where("tasks.id = ?", taskID).
		Limit(1).
		Pluck("completed.sub", &owners).Error
	if err != nil {
		return "", fmt.Errorf("failed to resolve task owner: %w", err)
	}
	if len(owners) == 0 {
		return "", nil
	}
	return owners[0], nil
}
