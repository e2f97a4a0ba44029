package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/services"
	"gorm.io/gorm"
)

// seed creates a test user and records one Math task for today.
func seed(ctx context.Context, db *gorm.DB, loc *time.Location, sub string) error {
	name, email := "Test User", "test@example.com"
	user, _, err := services.NewUserService(db).UpsertUser(ctx, &dto.UpsertUserRequest{
		Sub:   sub,
		Name:  &name,
		Email: &email,
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	slog.Info("seeded user", "sub", user.Sub, "user_id", user.ID.String())

	today := time.Now().In(loc)
	completed, err := services.NewCompletedService(db, loc).RecordCompletedTasks(ctx, &dto.RecordCompletedRequest{
		Sub:  sub,
		Date: today.Format("2006-01-02"),
		Day:  today.Weekday().String(),
		Tasks: []dto.TaskInput{{
			From:        "9:00",
			To:          "10:00",
			Duration:    "1 hour",
			Topic:       "Math",
			Description: "Studied algebra",
		}},
	})
	if err != nil {
		return fmt.Errorf("seed completed entry: %w", err)
	}
	slog.Info("seeded completed entry", "completed_id", completed.ID.String(), "tasks", len(completed.Tasks))
	return nil
}
