package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Completed aggregates everything a user finished on one calendar day.
type Completed struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Sub       string    `gorm:"size:255;not null;index:idx_completed_sub_date" json:"sub"`
	Date      time.Time `gorm:"not null;index:idx_completed_sub_date" json:"date"`
	Day       string    `gorm:"size:20" json:"day"`
	Tasks     []Task    `gorm:"foreignKey:CompletedID" json:"tasks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Completed) TableName() string { return "completed" }

// TaskIDs returns the ids of the loaded tasks in order.
func (c Completed) TaskIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

// MarshalJSON adds the taskIds list the front end reads alongside tasks.
func (c Completed) MarshalJSON() ([]byte, error) {
	type completed Completed
	tasks := c.Tasks
	if tasks == nil {
		tasks = []Task{}
	}
	out := struct {
		completed
		Tasks   []Task      `json:"tasks"`
		TaskIDs []uuid.UUID `json:"taskIds"`
	}{
		completed: completed(c),
		Tasks:     tasks,
		TaskIDs:   c.TaskIDs(),
	}
	return json.Marshal(out)
}
