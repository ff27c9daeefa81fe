// Package interaction turns pointer events into task date changes.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use.
package interaction

import (
	"fmt"

	"github.com/runoshun/gantt/internal/chart"
	"github.com/runoshun/gantt/internal/domain"
)

// Controller owns the drag session and the redraw-requested flag.
// Fields are ordered to minimize memory padding.
type Controller struct {
	tasks         domain.TaskRepository
	logger        domain.Logger
	mode          domain.DragMode
	session       domain.DragSession
	layout        chart.Layout
	width         float64
	redrawPending bool
}

// New creates a Controller over the task sequence.
func New(tasks domain.TaskRepository, layout chart.Layout, mode domain.DragMode, logger domain.Logger) *Controller {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if !mode.Valid() {
		mode = domain.DragModeDelta
	}
	return &Controller{
		tasks:  tasks,
		layout: layout,
		mode:   mode,
		logger: logger,
	}
}

// SetWidth sets the surface width used for hit testing and day conversion.
func (c *Controller) SetWidth(width float64) {
	c.width = width
}

// Width returns the current surface width.
func (c *Controller) Width() float64 {
	return c.width
}

// Layout returns the chart geometry used for hit testing.
func (c *Controller) Layout() chart.Layout {
	return c.layout
}

// Mode returns the drag mode.
func (c *Controller) Mode() domain.DragMode {
	return c.mode
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.session.Active
}

// Session returns a copy of the current drag session.
func (c *Controller) Session() domain.DragSession {
	return c.session
}

// PointerDown starts a drag when (x, y) is over a handle.
// It returns true if a drag session started.
func (c *Controller) PointerDown(x, y float64) bool {
	tasks := c.tasks.List()
	idx, edge := c.layout.HitTest(tasks, c.width, x, y)
	if idx < 0 {
		return false
	}

	task := tasks[idx]
	c.session = domain.DragSession{
		Active:      true,
		Task:        task,
		Edge:        edge,
		AnchorX:     x,
		OriginDate:  task.Date(edge),
		OriginRatio: chart.DaysPerUnit(tasks, c.width),
	}
	c.logger.Debug("drag", fmt.Sprintf("begin %s edge of %s at x=%.1f", edge, task, x))
	return true
}

// PointerMove moves the dragged edge. changed reports whether the task was
// modified; scheduleFrame reports whether the caller must schedule a frame
// (false when one is already pending). Moves while idle are ignored and moves
// outside the surface keep tracking.
func (c *Controller) PointerMove(x, _ float64) (changed, scheduleFrame bool) {
	if !c.session.Active || c.session.Task == nil {
		return false, false
	}

	target := c.session.Task.Date(c.session.Edge)
	switch c.mode {
	case domain.DragModeAbsolute:
		days := chart.RoundDays((x - c.session.AnchorX) * c.session.OriginRatio)
		target = domain.AddDays(c.session.OriginDate, days)
		if target.Equal(c.session.Task.Date(c.session.Edge)) {
			return false, false
		}
	default:
		// The ratio follows the current range, which the drag itself may change.
		ratio := chart.DaysPerUnit(c.tasks.List(), c.width)
		days := chart.RoundDays((x - c.session.AnchorX) * ratio)
		if days == 0 {
			return false, false
		}
		// Rejected deltas are dropped rather than carried into the next move.
		c.session.AnchorX = x
		target = domain.AddDays(target, days)
	}

	if !c.session.Task.SetEdge(c.session.Edge, target) {
		return false, false
	}
	c.logger.Debug("drag", fmt.Sprintf("moved %s edge: %s", c.session.Edge, c.session.Task))
	return true, c.RequestRedraw()
}

// PointerUp ends the drag session.
func (c *Controller) PointerUp() {
	if c.session.Active && c.session.Task != nil {
		c.logger.Info("drag", fmt.Sprintf("rescheduled %s", c.session.Task))
	}
	c.session = domain.DragSession{}
}

// MoveEdge shifts one edge of a task by whole days, with the same rules as a
// drag. Return values match PointerMove.
func (c *Controller) MoveEdge(task *domain.Task, edge domain.Edge, days int) (changed, scheduleFrame bool) {
	if task == nil || days == 0 {
		return false, false
	}
	if !task.SetEdge(edge, domain.AddDays(task.Date(edge), days)) {
		return false, false
	}
	c.logger.Info("task", fmt.Sprintf("nudged %s edge: %s", edge, task))
	return true, c.RequestRedraw()
}

// RequestRedraw marks the chart dirty. It returns true when the caller must
// schedule a frame, and false when one is already pending.
func (c *Controller) RequestRedraw() bool {
	if c.redrawPending {
		return false
	}
	c.redrawPending = true
	return true
}

// RedrawPending reports whether a frame has been requested but not drawn.
func (c *Controller) RedrawPending() bool {
	return c.redrawPending
}

// Frame runs draw once if a redraw is pending and clears the flag.
// It returns true if draw ran.
func (c *Controller) Frame(draw func()) bool {
	if !c.redrawPending {
		return false
	}
	c.redrawPending = false
	draw()
	return true
}
