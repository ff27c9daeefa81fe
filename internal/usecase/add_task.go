// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// AddTaskInput contains the form fields for a new task.
type AddTaskInput struct {
	Name      string // Task name (required)
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD, not before StartDate
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // The appended task
	Row  int          // Row index of the new task
}

// AddTask is the use case for adding a task from the form.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute validates the submission and appends it as the last row.
// On error the task sequence is left unchanged.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := domain.TaskSeed{Name: in.Name, Start: in.StartDate, End: in.EndDate}.Build()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("task", fmt.Sprintf("rejected %q: %v", in.Name, err))
		}
		return nil, err
	}

	uc.tasks.Append(task)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added: %s", task))
	}

	return &AddTaskOutput{Task: task, Row: uc.tasks.Len() - 1}, nil
}
