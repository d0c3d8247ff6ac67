package engine

import "errors"

var (
	ErrEmptyName    = errors.New("name is required")
	ErrTaskNotFound = errors.New("task not found")
	ErrUnknownList  = errors.New("unknown task list")
)
