package domain

import "errors"

// Domain errors.
var (
	ErrNoTasks           = errors.New("no tasks")
	ErrEmptyName         = errors.New("task name cannot be empty")
	ErrInvalidDate       = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrEndBeforeStart    = errors.New("End date should be greater than or equal to start date")
	ErrInvalidDragMode   = errors.New("invalid drag mode")
	ErrInvalidLayout     = errors.New("invalid chart layout")
	ErrInvalidColor      = errors.New("invalid color")
	ErrEmptyFile         = errors.New("file is empty")
	ErrNoTasksInFile     = errors.New("no tasks found in file")
	ErrConfigExists      = errors.New("config file already exists")
	ErrConfigNil         = errors.New("config is nil")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
