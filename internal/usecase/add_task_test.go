package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/memstore"
	"github.com/runoshun/gantt/internal/testutil"
	"github.com/runoshun/gantt/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	_, err := usecase.NewSeedTasks(store, nil).Execute(context.Background(), usecase.SeedTasksInput{
		Seeds: []domain.TaskSeed{
			{Name: "T1", Start: "2023-04-01", End: "2023-04-10"},
			{Name: "T2", Start: "2023-04-05", End: "2023-04-15"},
		},
	})
	require.NoError(t, err)
	return store
}

func TestAddTask_Execute(t *testing.T) {
	// Setup
	store := seededStore(t)
	logger := &testutil.MockLogger{}
	uc := usecase.NewAddTask(store, logger)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.AddTaskInput{
		Name:      "T3",
		StartDate: "2023-04-12",
		EndDate:   "2023-04-20",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "T3", out.Task.Name)
	assert.Equal(t, domain.Date(2023, time.April, 12), out.Task.Start)
	assert.Equal(t, domain.Date(2023, time.April, 20), out.Task.End)
	assert.Equal(t, 2, out.Row)
	require.Equal(t, 3, store.Len())
	assert.Same(t, out.Task, store.List()[2])
	assert.NotEmpty(t, logger.Messages("task"))
}

func TestAddTask_Execute_SameDay(t *testing.T) {
	store := seededStore(t)
	uc := usecase.NewAddTask(store, nil)

	out, err := uc.Execute(context.Background(), usecase.AddTaskInput{
		Name:      "Milestone",
		StartDate: "2023-04-18",
		EndDate:   "2023-04-18",
	})

	require.NoError(t, err)
	assert.Equal(t, out.Task.Start, out.Task.End)
	assert.Equal(t, 3, store.Len())
}

func TestAddTask_Execute_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.AddTaskInput
		wantErr error
	}{
		{
			name:    "end before start",
			input:   usecase.AddTaskInput{Name: "T3", StartDate: "2023-04-20", EndDate: "2023-04-18"},
			wantErr: domain.ErrEndBeforeStart,
		},
		{
			name:    "empty name",
			input:   usecase.AddTaskInput{Name: "", StartDate: "2023-04-01", EndDate: "2023-04-02"},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "blank name",
			input:   usecase.AddTaskInput{Name: "   ", StartDate: "2023-04-01", EndDate: "2023-04-02"},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "bad start date",
			input:   usecase.AddTaskInput{Name: "T3", StartDate: "04/01/2023", EndDate: "2023-04-02"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "missing end date",
			input:   usecase.AddTaskInput{Name: "T3", StartDate: "2023-04-01", EndDate: ""},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t)
			logger := &testutil.MockLogger{}
			uc := usecase.NewAddTask(store, logger)

			out, err := uc.Execute(context.Background(), tt.input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
			assert.Equal(t, 2, store.Len(), "sequence must be unchanged")
			assert.Len(t, logger.Messages("task"), 1)
		})
	}
}

func TestAddTask_Execute_EndBeforeStartMessage(t *testing.T) {
	uc := usecase.NewAddTask(memstore.New(), nil)

	_, err := uc.Execute(context.Background(), usecase.AddTaskInput{
		Name:      "T3",
		StartDate: "2023-04-20",
		EndDate:   "2023-04-18",
	})

	require.Error(t, err)
	assert.Equal(t, "End date should be greater than or equal to start date", err.Error())
}
