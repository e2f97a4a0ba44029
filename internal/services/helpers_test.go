package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fixture struct {
	db        *gorm.DB
	clock     *fakeClock
	completed *CompletedService
	tasks     *TaskService
	users     *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
	return &fixture{
		db:        db,
		clock:     clock,
		completed: NewCompletedService(db, time.UTC, WithClock(clock.Now)),
		tasks:     NewTaskService(db, time.UTC, WithClock(clock.Now)),
		users:     NewUserService(db),
	}
}

func task(topic string) dto.TaskInput {
	return dto.TaskInput{
		From:        "9:00",
		To:          "10:00",
		Duration:    "1h",
		Topic:       topic,
		Description: topic + " notes",
	}
}

func (f *fixture) record(t *testing.T, sub, date string, tasks ...dto.TaskInput) *models.Completed {
	t.Helper()

	completed, err := f.completed.RecordCompletedTasks(t.Context(), &dto.RecordCompletedRequest{
		Sub:   sub,
		Date:  date,
		Day:   "Friday",
		Tasks: tasks,
	})
	require.NoError(t, err)
	return completed
}

func (f *fixture) countCompleted(t *testing.T, sub string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Model(&models.Completed{}).Where("sub = ?", sub).Count(&n).Error)
	return n
}
