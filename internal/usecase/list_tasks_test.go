package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/gantt/internal/domain"
	"github.com/runoshun/gantt/internal/infra/memstore"
	"github.com/runoshun/gantt/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	t.Run("returns tasks and range", func(t *testing.T) {
		uc := usecase.NewListTasks(seededStore(t))

		out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})

		require.NoError(t, err)
		require.Len(t, out.Tasks, 2)
		assert.Equal(t, "T1", out.Tasks[0].Name)
		assert.Equal(t, domain.Date(2023, time.April, 1), out.MinDate)
		assert.Equal(t, domain.Date(2023, time.April, 15), out.MaxDate)
	})

	t.Run("no tasks leaves range zero", func(t *testing.T) {
		uc := usecase.NewListTasks(memstore.New())

		out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})

		require.NoError(t, err)
		assert.Empty(t, out.Tasks)
		assert.True(t, out.MinDate.IsZero())
		assert.True(t, out.MaxDate.IsZero())
	})
}
