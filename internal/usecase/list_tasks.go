package usecase

import (
	"context"
	"time"

	"github.com/runoshun/gantt/internal/chart"
	"github.com/runoshun/gantt/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the tasks and their overall date range.
// MinDate and MaxDate are zero when there are no tasks.
type ListTasksOutput struct {
	MinDate time.Time
	MaxDate time.Time
	Tasks   []*domain.Task
}

// ListTasks is the use case for listing tasks in row order.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the tasks in row order.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks := uc.tasks.List()
	out := &ListTasksOutput{Tasks: tasks}
	if minDate, maxDate, err := chart.DateRange(tasks); err == nil {
		out.MinDate, out.MaxDate = minDate, maxDate
	}
	return out, nil
}
