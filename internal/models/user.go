package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is keyed by the identity provider's subject. Fields the client posts
// beyond the well-known profile columns are kept in Profile.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Sub       string         `gorm:"size:255;not null;uniqueIndex" json:"sub"`
	Name      string         `gorm:"size:255" json:"name"`
	Email     string         `gorm:"size:255" json:"email"`
	Nickname  string         `gorm:"size:255" json:"nickname"`
	Picture   string         `gorm:"type:text" json:"picture"`
	Profile   datatypes.JSON `json:"profile,omitempty"`
	Completed []Completed    `gorm:"foreignKey:Sub;references:Sub" json:"completed"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
