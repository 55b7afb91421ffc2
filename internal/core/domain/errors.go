package domain

import "errors"

var (
	ErrEmptyTitle         = errors.New("task title is empty")
	ErrInvalidPriority    = errors.New("invalid task priority")
	ErrTaskNotFound       = errors.New("task not found")
	ErrStepNotFound       = errors.New("step not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("user already exists")
)
