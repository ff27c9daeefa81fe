package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	start := Date(2023, time.April, 1)
	end := Date(2023, time.April, 10)

	task, err := NewTask("  Task 1 ", start, end)

	require.NoError(t, err)
	assert.Equal(t, "Task 1", task.Name)
	assert.Equal(t, start, task.Start)
	assert.Equal(t, end, task.End)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, 9, task.Days())
}

func TestNewTask_UniqueIDs(t *testing.T) {
	d := Date(2023, time.April, 1)
	a, err := NewTask("a", d, d)
	require.NoError(t, err)
	b, err := NewTask("b", d, d)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewTask_Validation(t *testing.T) {
	d := Date(2023, time.April, 10)

	tests := []struct {
		wantErr error
		start   time.Time
		end     time.Time
		name    string
		label   string
	}{
		{label: "empty name", name: "", start: d, end: d, wantErr: ErrEmptyName},
		{label: "blank name", name: "   ", start: d, end: d, wantErr: ErrEmptyName},
		{label: "end before start", name: "T3", start: Date(2023, time.April, 20), end: Date(2023, time.April, 18), wantErr: ErrEndBeforeStart},
		{label: "same day", name: "T", start: d, end: d},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			task, err := NewTask(tt.name, tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, task.Days())
		})
	}
}

func TestErrEndBeforeStart_Message(t *testing.T) {
	assert.Equal(t, "End date should be greater than or equal to start date", ErrEndBeforeStart.Error())
}

func newTestTask(t *testing.T, start, end time.Time) *Task {
	t.Helper()
	task, err := NewTask("Task", start, end)
	require.NoError(t, err)
	return task
}

func TestTask_SetStart(t *testing.T) {
	start := Date(2023, time.April, 1)
	end := Date(2023, time.April, 10)

	t.Run("moves start before end", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.True(t, task.SetStart(Date(2023, time.April, 5)))
		assert.Equal(t, Date(2023, time.April, 5), task.Start)
	})

	t.Run("rejects start equal to end", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.False(t, task.SetStart(end))
		assert.Equal(t, start, task.Start)
	})

	t.Run("rejects start after end", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.False(t, task.SetStart(Date(2023, time.April, 12)))
		assert.Equal(t, start, task.Start)
	})
}

func TestTask_SetEnd(t *testing.T) {
	start := Date(2023, time.April, 1)
	end := Date(2023, time.April, 10)

	t.Run("moves end after start", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.True(t, task.SetEnd(Date(2023, time.April, 15)))
		assert.Equal(t, Date(2023, time.April, 15), task.End)
	})

	t.Run("rejects end equal to start", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.False(t, task.SetEnd(start))
		assert.Equal(t, end, task.End)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		task := newTestTask(t, start, end)
		assert.False(t, task.SetEnd(Date(2023, time.March, 30)))
		assert.Equal(t, end, task.End)
	})
}

func TestTask_SetEdge(t *testing.T) {
	task := newTestTask(t, Date(2023, time.April, 1), Date(2023, time.April, 10))

	assert.True(t, task.SetEdge(EdgeStart, Date(2023, time.April, 2)))
	assert.True(t, task.SetEdge(EdgeEnd, Date(2023, time.April, 11)))
	assert.Equal(t, Date(2023, time.April, 2), task.Date(EdgeStart))
	assert.Equal(t, Date(2023, time.April, 11), task.Date(EdgeEnd))
}

func TestTask_String(t *testing.T) {
	task := newTestTask(t, Date(2023, time.April, 1), Date(2023, time.April, 10))
	assert.Equal(t, "Task [2023-04-01 .. 2023-04-10]", task.String())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "start", EdgeStart.String())
	assert.Equal(t, "end", EdgeEnd.String())
	assert.Equal(t, "none", EdgeNone.String())
}

func TestDragMode_Valid(t *testing.T) {
	assert.True(t, DragModeDelta.Valid())
	assert.True(t, DragModeAbsolute.Valid())
	assert.False(t, DragMode("").Valid())
	assert.False(t, DragMode("relative").Valid())
}
