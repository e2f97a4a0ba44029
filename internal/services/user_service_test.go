package services

import (
	"encoding/json"
	"testing"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUser_CreateThenUpdate(t *testing.T) {
	f := newFixture(t)

	created, completed, err := f.users.UpsertUser(t.Context(), &dto.UpsertUserRequest{
		Sub:   "auth0|1",
		Name:  strPtr("Ada"),
		Email: strPtr("ada@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", created.Name)
	assert.NotNil(t, completed)
	assert.Empty(t, completed)

	f.record(t, "auth0|1", "2024-03-01", task("Math"))

	updated, completed, err := f.users.UpsertUser(t.Context(), &dto.UpsertUserRequest{
		Sub:  "auth0|1",
		Name: strPtr("Ada Lovelace"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email, "fields missing from the body are kept")
	require.Len(t, completed, 1)
	assert.Len(t, completed[0].Tasks, 1)
}

func TestUpsertUser_StoresExtraProfile(t *testing.T) {
	f := newFixture(t)

	req, err := dto.ParseUpsertUser([]byte(`{"sub":"s1","name":"Bob","email_verified":true,"locale":"en"}`))
	require.NoError(t, err)

	user, _, err := f.users.UpsertUser(t.Context(), req)
	require.NoError(t, err)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(user.Profile, &profile))
	assert.Equal(t, true, profile["email_verified"])
	assert.Equal(t, "en", profile["locale"])
	assert.NotContains(t, profile, "name")
}

func TestUpsertUser_RequiresSub(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.users.UpsertUser(t.Context(), &dto.UpsertUserRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrSubRequired)
}

func TestGetUserWithCompleted(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetUserWithCompleted(t.Context(), "unknown")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = f.users.UpsertUser(t.Context(), &dto.UpsertUserRequest{Sub: "u1"})
	require.NoError(t, err)

	user, err := f.users.GetUserWithCompleted(t.Context(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, user.Completed)
	assert.Empty(t, user.Completed)

	f.record(t, "u1", "2024-03-01", task("Math"), task("Physics"))
	f.record(t, "u1", "2024-03-02", task("Art"))

	user, err = f.users.GetUserWithCompleted(t.Context(), "u1")
	require.NoError(t, err)
	require.Len(t, user.Completed, 2)
	assert.Equal(t, "Art", user.Completed[0].Tasks[0].Topic)
	require.Len(t, user.Completed[1].Tasks, 2)
	assert.Equal(t, "Math", user.Completed[1].Tasks[0].Topic)
	assert.Equal(t, "Physics", user.Completed[1].Tasks[1].Topic)
}
