package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/gantt/internal/domain"
)

// SeedTasksInput contains the initial task definitions.
type SeedTasksInput struct {
	Seeds []domain.TaskSeed
}

// SeedTasksOutput contains the result of seeding.
type SeedTasksOutput struct {
	Tasks []*domain.Task // Tasks appended, in row order
}

// SeedTasks is the use case for loading the startup task set.
type SeedTasks struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewSeedTasks creates a new SeedTasks use case.
func NewSeedTasks(tasks domain.TaskRepository, logger domain.Logger) *SeedTasks {
	return &SeedTasks{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute validates every seed first and appends them only if all are valid.
func (uc *SeedTasks) Execute(_ context.Context, in SeedTasksInput) (*SeedTasksOutput, error) {
	built := make([]*domain.Task, 0, len(in.Seeds))
	for i, seed := range in.Seeds {
		task, err := seed.Build()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		built = append(built, task)
	}

	for _, task := range built {
		uc.tasks.Append(task)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("seeded %d tasks", len(built)))
	}

	return &SeedTasksOutput{Tasks: built}, nil
}
