package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single time-boxed activity. CompletedID points at the daily entry
// that owns it; Position keeps insertion order within that entry.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	From        string     `gorm:"column:from;size:50" json:"from"`
	To          string     `gorm:"column:to;size:50" json:"to"`
	Duration    string     `gorm:"size:50" json:"duration"`
	Topic       string     `gorm:"size:255" json:"topic"`
	Description string     `gorm:"type:text" json:"description"`
	CompletedID *uuid.UUID `gorm:"type:uuid;index" json:"completedId"`
	Position    int        `gorm:"not null" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
