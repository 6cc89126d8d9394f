package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrInvalidDuration = errors.New("task duration must be at least 1 second")
	ErrTaskNotFound    = errors.New("task not found")
	ErrListNotFound    = errors.New("list not found")
	ErrEmptyListName   = errors.New("list name cannot be empty")
	ErrDuplicateList   = errors.New("a list with that name already exists")
	ErrLastList        = errors.New("the last remaining list cannot be deleted")
	ErrMalformedImport = errors.New("import document contains no lists")
	ErrInvalidMode     = errors.New("unknown announce mode")
	ErrNoEnabledTasks  = errors.New("no enabled task to run")
	ErrNoTaskDrafts    = errors.New("file contains no task entries")
)
