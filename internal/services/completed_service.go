package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompletedService struct {
	db *gorm.DB
	calendar
}

func NewCompletedService(db *gorm.DB, loc *time.Location, opts ...Option) *CompletedService {
	return &CompletedService{db: db, calendar: newCalendar(loc, opts)}
}

// RecordCompletedTasks stores a batch of tasks and folds them into the user's
// entry for that calendar day, creating the entry on the first batch. The
// whole operation commits or rolls back as one transaction.
func (s *CompletedService) RecordCompletedTasks(ctx context.Context, req *dto.RecordCompletedRequest) (*models.Completed, error) {
	sub := strings.TrimSpace(req.Sub)
	if sub == "" {
		return nil, ErrSubRequired
	}
	if len(req.Tasks) == 0 {
		return nil, ErrNoTasks
	}
	date, err := ParseDate(req.Date, s.loc)
	if err != nil {
		return nil, err
	}

	var result models.Completed
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completed, created, err := s.findOrCreateDay(tx, sub, date, req.Day)
		if err != nil {
			return err
		}

		next := 0
		if !created {
			if err := tx.Model(&models.Task{}).
				Where("completed_id = ?", completed.ID).
				Select("COALESCE(MAX(position), -1) + 1").
				Scan(&next).Error; err != nil {
				return fmt.Errorf("failed to read task positions: %w", err)
			}
		}

		createdAt := s.now()
		tasks := make([]models.Task, len(req.Tasks))
		for i, in := range req.Tasks {
			tasks[i] = models.Task{
				ID:          uuid.New(),
				From:        in.From,
				To:          in.To,
				Duration:    in.Duration,
				Topic:       in.Topic,
				Description: in.Description,
				CompletedID: &completed.ID,
				Position:    next + i,
				CreatedAt:   createdAt,
			}
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to create tasks: %w", err)
		}

		if err := tx.Preload("Tasks", tasksInOrder).First(&result, "id = ?", completed.ID).Error; err != nil {
			return fmt.Errorf("failed to reload completed entry: %w", err)
		}

		slog.Info("completed tasks recorded",
			"sub", sub,
			"completed_id", completed.ID.String(),
			"added", len(tasks),
			"total", len(result.Tasks),
			"new_entry", created,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// findOrCreateDay returns the entry for sub on date's calendar day.
func (s *CompletedService) findOrCreateDay(tx *gorm.DB, sub string, date time.Time, day string) (*models.Completed, bool, error) {
	var completed models.Completed
	err := tx.Where("sub = ? AND date >= ? AND date < ?", sub, StartOfDay(date, s.loc), EndOfDay(date, s.loc)).
		Order("date ASC").
		First(&completed).Error
	if err == nil {
		return &completed, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to find completed entry: %w", err)
	}

	completed = models.Completed{
		ID:   uuid.New(),
		Sub:  sub,
		Date: date,
		Day:  day,
	}
	if err := tx.Create(&completed).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create completed entry: %w", err)
	}
	return &completed, true, nil
}

// ListCompleted returns every entry of sub, newest day first.
func (s *CompletedService) ListCompleted(ctx context.Context, sub string) ([]models.Completed, error) {
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return nil, ErrSubRequired
	}
	return listCompleted(s.db.WithContext(ctx), sub)
}

func listCompleted(db *gorm.DB, sub string) ([]models.Completed, error) {
	entries := []models.Completed{}
	if err := db.Preload("Tasks", tasksInOrder).
		Where("sub = ?", sub).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list completed entries: %w", err)
	}
	return entries, nil
}
