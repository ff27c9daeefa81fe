package chart

import "github.com/runoshun/gantt/internal/domain"

// Layout holds the fixed geometry of the chart.
type Layout struct {
	TopMargin       float64 // Space above row 0, used for the date labels
	TaskHeight      float64 // Row band height
	HandleWidth     float64 // Width of each drag handle
	LabelY          float64 // Vertical position of date labels
	LabelPadX       float64 // Gap between a line or bar edge and its text
	MinLabelSpacing float64 // Minimum gap between date labels; 0 labels every day
	HitSlop         float64 // Horizontal tolerance added to both sides of a handle
}

// DefaultLayout returns the canvas-sized layout (30 unit rows, 10 unit handles).
func DefaultLayout() Layout {
	return Layout{
		TaskHeight:  30,
		HandleWidth: 10,
		LabelY:      15,
		LabelPadX:   5,
	}
}

// LayoutFromConfig builds a layout from the [chart] config section.
func LayoutFromConfig(c domain.ChartConfig) Layout {
	return Layout{
		TopMargin:       c.TopMargin,
		TaskHeight:      c.TaskHeight,
		HandleWidth:     c.HandleWidth,
		LabelY:          c.LabelY,
		LabelPadX:       c.LabelPadX,
		MinLabelSpacing: c.MinLabelSpacing,
		HitSlop:         c.HitSlop,
	}
}

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// RowY returns the top of row i. Row i occupies [RowY(i), RowY(i)+TaskHeight).
func (l Layout) RowY(i int) float64 {
	return l.TopMargin + float64(i)*l.TaskHeight
}

// BarRect returns the bar rectangle for the task in row i.
func (l Layout) BarRect(tasks []*domain.Task, i int, width float64) Rect {
	t := tasks[i]
	x := OffsetForDate(t.Start, tasks, width)
	return Rect{
		X: x,
		Y: l.RowY(i),
		W: OffsetForDate(t.End, tasks, width) - x,
		H: l.TaskHeight,
	}
}

// StartHandle returns the left handle region of a bar.
func (l Layout) StartHandle(bar Rect) Rect {
	return Rect{X: bar.X, Y: bar.Y, W: l.HandleWidth, H: bar.H}
}

// EndHandle returns the right handle region of a bar.
func (l Layout) EndHandle(bar Rect) Rect {
	return Rect{X: bar.X + bar.W - l.HandleWidth, Y: bar.Y, W: l.HandleWidth, H: bar.H}
}

// HitTest finds the handle under (x, y). Tasks are scanned in row order and
// the first match wins; a task's start handle is checked before its end handle.
// It returns -1 and EdgeNone when nothing is hit.
func (l Layout) HitTest(tasks []*domain.Task, width, x, y float64) (int, domain.Edge) {
	for i := range tasks {
		bar := l.BarRect(tasks, i, width)
		if l.pad(l.StartHandle(bar)).Contains(x, y) {
			return i, domain.EdgeStart
		}
		if l.pad(l.EndHandle(bar)).Contains(x, y) {
			return i, domain.EdgeEnd
		}
	}
	return -1, domain.EdgeNone
}

func (l Layout) pad(r Rect) Rect {
	r.X -= l.HitSlop
	r.W += 2 * l.HitSlop
	return r
}

// RowAt returns the row index at y, or -1 when y is outside every row.
func (l Layout) RowAt(tasks []*domain.Task, y float64) int {
	y -= l.TopMargin
	if y < 0 || l.TaskHeight <= 0 {
		return -1
	}
	i := int(y / l.TaskHeight)
	if i >= len(tasks) {
		return -1
	}
	return i
}
