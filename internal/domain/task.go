// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is one row of the chart: a named span of calendar days.
// Start is never after End.
type Task struct {
	Start time.Time // First day (UTC midnight)
	End   time.Time // Last day (UTC midnight)
	ID    string    // Stable identity for logs
	Name  string    // Display label
}

// NewTask validates the span and returns a task with a fresh ID.
func NewTask(name string, start, end time.Time) (*Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	start, end = TruncateDay(start), TruncateDay(end)
	if end.Before(start) {
		return nil, ErrEndBeforeStart
	}
	return &Task{
		ID:    uuid.NewString(),
		Name:  name,
		Start: start,
		End:   end,
	}, nil
}

// Days returns the length of the task in days (0 for a single-day task).
func (t *Task) Days() int {
	return DaysBetween(t.Start, t.End)
}

// Date returns the date of the given edge.
func (t *Task) Date(edge Edge) time.Time {
	if edge == EdgeStart {
		return t.Start
	}
	return t.End
}

// SetStart moves the start edge. The edit is rejected unless the
// new start is strictly before the end.
func (t *Task) SetStart(d time.Time) bool {
	d = TruncateDay(d)
	if !d.Before(t.End) {
		return false
	}
	t.Start = d
	return true
}

// SetEnd moves the end edge. The edit is rejected unless the
// new end is strictly after the start.
func (t *Task) SetEnd(d time.Time) bool {
	d = TruncateDay(d)
	if !d.After(t.Start) {
		return false
	}
	t.End = d
	return true
}

// SetEdge dispatches to SetStart or SetEnd.
func (t *Task) SetEdge(edge Edge, d time.Time) bool {
	if edge == EdgeStart {
		return t.SetStart(d)
	}
	return t.SetEnd(d)
}

// String returns a one-line summary used in logs.
func (t *Task) String() string {
	return t.Name + " [" + FormatDate(t.Start) + " .. " + FormatDate(t.End) + "]"
}
