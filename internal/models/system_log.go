package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SystemLog stores ERROR+ log records for later querying.
type SystemLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Timestamp   time.Time      `gorm:"not null;index" json:"timestamp"`
	Level       string         `gorm:"size:10;not null;index" json:"level"`
	Message     string         `gorm:"type:text" json:"message"`
	RequestID   string         `gorm:"size:36;index" json:"request_id"`
	Sub         *string        `gorm:"size:255;index" json:"sub"`
	TaskID      string         `gorm:"size:36" json:"task_id"`
	CompletedID string         `gorm:"size:36" json:"completed_id"`
	Action      string         `gorm:"size:100" json:"action"`
	Error       string         `gorm:"type:text" json:"error"`
	Extra       datatypes.JSON `json:"extra"`
	CreatedAt   time.Time      `json:"created_at"`
}
