package dto

import (
	"encoding/json"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/models"
	"github.com/google/uuid"
)

// UpsertUserRequest carries the identity provider's profile. Nil fields were
// absent from the request body and are left untouched on update.
type UpsertUserRequest struct {
	Sub      string  `json:"sub"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Nickname *string `json:"nickname"`
	Picture  *string `json:"picture"`

	// Extra holds every other field of the body.
	Extra map[string]any `json:"-"`
}

var knownUserFields = []string{"id", "sub", "name", "email", "nickname", "picture", "completed", "createdAt", "updatedAt"}

// ParseUpsertUser decodes a user body, splitting known profile fields from the
// rest.
func ParseUpsertUser(body []byte) (*UpsertUserRequest, error) {
	var req UpsertUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	for _, k := range knownUserFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		req.Extra = raw
	}
	return &req, nil
}

type UpsertUserResponse struct {
	Message        string             `json:"message"`
	UserID         uuid.UUID          `json:"userId"`
	CompletedTasks []models.Completed `json:"completedTasks"`
}
