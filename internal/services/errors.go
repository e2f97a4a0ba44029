package services

import "errors"

var (
	ErrSubRequired  = errors.New("sub is required")
	ErrNoTasks      = errors.New("at least one task is required")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD or an RFC 3339 timestamp")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskNotToday = errors.New("task was not created today")
)
