package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletedTasks_CreatesEntry(t *testing.T) {
	f := newFixture(t)

	completed := f.record(t, "u1", "2024-03-01", task("Math"))

	assert.Equal(t, "u1", completed.Sub)
	assert.Equal(t, "Friday", completed.Day)
	require.Len(t, completed.Tasks, 1)
	assert.Equal(t, "Math", completed.Tasks[0].Topic)
	assert.Equal(t, []uuid.UUID{completed.Tasks[0].ID}, completed.TaskIDs())
	require.NotNil(t, completed.Tasks[0].CompletedID)
	assert.Equal(t, completed.ID, *completed.Tasks[0].CompletedID)
	assert.EqualValues(t, 1, f.countCompleted(t, "u1"))
}

func TestRecordCompletedTasks_SameDayAppends(t *testing.T) {
	f := newFixture(t)

	first := f.record(t, "u1", "2024-03-01", task("Math"), task("Physics"))
	second := f.record(t, "u1", "2024-03-01T18:45:00Z", task("Chemistry"), task("Biology"), task("History"))

	assert.Equal(t, first.ID, second.ID)
	assert.EqualValues(t, 1, f.countCompleted(t, "u1"))
	require.Len(t, second.Tasks, 5)

	want := append(first.TaskIDs(), second.Tasks[2].ID, second.Tasks[3].ID, second.Tasks[4].ID)
	assert.Equal(t, want, second.TaskIDs())

	topics := make([]string, 0, len(second.Tasks))
	for _, tk := range second.Tasks {
		topics = append(topics, tk.Topic)
	}
	assert.Equal(t, []string{"Math", "Physics", "Chemistry", "Biology", "History"}, topics)
}

func TestRecordCompletedTasks_DifferentDaysSeparate(t *testing.T) {
	f := newFixture(t)

	d1 := f.record(t, "u1", "2024-03-01", task("Math"))
	d2 := f.record(t, "u1", "2024-03-02", task("Math"))

	assert.NotEqual(t, d1.ID, d2.ID)
	assert.EqualValues(t, 2, f.countCompleted(t, "u1"))
}

func TestRecordCompletedTasks_UsersSeparate(t *testing.T) {
	f := newFixture(t)

	a := f.record(t, "u1", "2024-03-01", task("Math"))
	b := f.record(t, "u2", "2024-03-01", task("Math"))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, b.Tasks, 1)
}

func TestRecordCompletedTasks_DuplicateTuplesGetDistinctIDs(t *testing.T) {
	f := newFixture(t)

	// Same from/to/topic twice in one batch and once more in a later batch.
	f.record(t, "u1", "2024-03-01", task("Math"), task("Math"))
	completed := f.record(t, "u1", "2024-03-01", task("Math"))

	ids := completed.TaskIDs()
	require.Len(t, ids, 3)
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	var total int64
	require.NoError(t, f.db.Model(&models.Task{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)
}

func TestRecordCompletedTasks_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		req     dto.RecordCompletedRequest
		wantErr error
	}{
		{
			name:    "missing sub",
			req:     dto.RecordCompletedRequest{Date: "2024-03-01", Tasks: []dto.TaskInput{task("Math")}},
			wantErr: ErrSubRequired,
		},
		{
			name:    "no tasks",
			req:     dto.RecordCompletedRequest{Sub: "u1", Date: "2024-03-01"},
			wantErr: ErrNoTasks,
		},
		{
			name:    "bad date",
			req:     dto.RecordCompletedRequest{Sub: "u1", Date: "01/03/2024", Tasks: []dto.TaskInput{task("Math")}},
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.completed.RecordCompletedTasks(t.Context(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	var total int64
	require.NoError(t, f.db.Model(&models.Task{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestRecordCompletedTasks_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.db.Migrator().DropTable(&models.Task{}))

	_, err := f.completed.RecordCompletedTasks(t.Context(), &dto.RecordCompletedRequest{
		Sub:   "u1",
		Date:  "2024-03-01",
		Day:   "Friday",
		Tasks: []dto.TaskInput{task("Math")},
	})
	require.Error(t, err)
	assert.Zero(t, f.countCompleted(t, "u1"))
}

func TestListCompleted(t *testing.T) {
	f := newFixture(t)

	f.record(t, "u1", "2024-03-01", task("Math"))
	f.record(t, "u1", "2024-03-03", task("Physics"), task("Chemistry"))
	f.record(t, "u1", "2024-03-02", task("Biology"))
	f.record(t, "u2", "2024-03-04", task("Art"))

	entries, err := f.completed.ListCompleted(t.Context(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 3, entries[0].Date.Day())
	assert.Equal(t, 2, entries[1].Date.Day())
	assert.Equal(t, 1, entries[2].Date.Day())
	assert.Len(t, entries[0].Tasks, 2)
	assert.Equal(t, "Physics", entries[0].Tasks[0].Topic)

	empty, err := f.completed.ListCompleted(t.Context(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = f.completed.ListCompleted(t.Context(), " ")
	assert.ErrorIs(t, err, ErrSubRequired)
}
