package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/gantt/internal/domain"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 10}

	assert.True(t, r.Contains(10, 20), "top-left corner")
	assert.True(t, r.Contains(15, 30), "bottom-right corner")
	assert.True(t, r.Contains(12, 25))
	assert.False(t, r.Contains(9.9, 25))
	assert.False(t, r.Contains(12, 30.1))
}

func TestLayout_BarRect(t *testing.T) {
	tasks := twoTasks(t)
	l := DefaultLayout()

	assert.Equal(t, Rect{X: 0, Y: 0, W: 90, H: 30}, l.BarRect(tasks, 0, 140))
	assert.Equal(t, Rect{X: 40, Y: 30, W: 100, H: 30}, l.BarRect(tasks, 1, 140))

	bar := l.BarRect(tasks, 0, 140)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 30}, l.StartHandle(bar))
	assert.Equal(t, Rect{X: 80, Y: 0, W: 10, H: 30}, l.EndHandle(bar))
}

func TestLayout_BarRect_TopMargin(t *testing.T) {
	tasks := twoTasks(t)
	l := LayoutFromConfig(domain.NewDefaultConfig().Chart)

	assert.InDelta(t, 1, l.BarRect(tasks, 0, 140).Y, 0)
	assert.InDelta(t, 3, l.BarRect(tasks, 1, 140).Y, 0)
}

func TestLayout_HitTest(t *testing.T) {
	tasks := twoTasks(t)
	l := DefaultLayout()

	tests := []struct {
		name     string
		x, y     float64
		wantRow  int
		wantEdge domain.Edge
	}{
		{name: "T1 start handle", x: 5, y: 5, wantRow: 0, wantEdge: domain.EdgeStart},
		{name: "T1 end handle", x: 85, y: 5, wantRow: 0, wantEdge: domain.EdgeEnd},
		{name: "T1 end handle right edge", x: 90, y: 30, wantRow: 0, wantEdge: domain.EdgeEnd},
		{name: "T2 start handle", x: 45, y: 45, wantRow: 1, wantEdge: domain.EdgeStart},
		{name: "T2 end handle", x: 135, y: 45, wantRow: 1, wantEdge: domain.EdgeEnd},
		{name: "bar body", x: 50, y: 5, wantRow: -1, wantEdge: domain.EdgeNone},
		{name: "below rows", x: 5, y: 61, wantRow: -1, wantEdge: domain.EdgeNone},
		{name: "left of chart", x: -1, y: 5, wantRow: -1, wantEdge: domain.EdgeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, edge := l.HitTest(tasks, 140, tt.x, tt.y)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantEdge, edge)
		})
	}
}

func TestLayout_HitTest_StartCheckedFirst(t *testing.T) {
	// A one-day bar 10 units wide has both handles on the same cells.
	tasks := []*domain.Task{
		mustTask(t, "Short", "2023-04-01", "2023-04-02"),
		mustTask(t, "Long", "2023-04-01", "2023-04-15"),
	}

	row, edge := DefaultLayout().HitTest(tasks, 140, 5, 5)

	assert.Equal(t, 0, row)
	assert.Equal(t, domain.EdgeStart, edge)
}

func TestLayout_HitTest_FirstRowWins(t *testing.T) {
	tasks := twoTasks(t)

	// y = 30 is the shared boundary of row 0 and row 1; x = 45 is only on T2's start handle.
	row, edge := DefaultLayout().HitTest(tasks, 140, 45, 30)
	assert.Equal(t, 1, row)
	assert.Equal(t, domain.EdgeStart, edge)

	// x = 85 is on T1's end handle at the shared boundary.
	row, edge = DefaultLayout().HitTest(tasks, 140, 85, 30)
	assert.Equal(t, 0, row)
	assert.Equal(t, domain.EdgeEnd, edge)
}

func TestLayout_HitTest_Slop(t *testing.T) {
	tasks := twoTasks(t)
	l := DefaultLayout()
	l.HitSlop = 2

	row, edge := l.HitTest(tasks, 140, -1.5, 5)
	assert.Equal(t, 0, row)
	assert.Equal(t, domain.EdgeStart, edge)

	row, _ = l.HitTest(tasks, 140, 92.5, 5)
	assert.Equal(t, -1, row)
}

func TestLayout_RowAt(t *testing.T) {
	tasks := twoTasks(t)

	l := DefaultLayout()
	assert.Equal(t, 0, l.RowAt(tasks, 0))
	assert.Equal(t, 0, l.RowAt(tasks, 29))
	assert.Equal(t, 1, l.RowAt(tasks, 45))
	assert.Equal(t, -1, l.RowAt(tasks, 60))
	assert.Equal(t, -1, l.RowAt(tasks, -1))

	cells := LayoutFromConfig(domain.NewDefaultConfig().Chart)
	assert.Equal(t, -1, cells.RowAt(tasks, 0))
	assert.Equal(t, 0, cells.RowAt(tasks, 1))
	assert.Equal(t, 0, cells.RowAt(tasks, 2))
	assert.Equal(t, 1, cells.RowAt(tasks, 3))
}
