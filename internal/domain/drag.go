package domain

import "time"

// Edge identifies which end of a task bar is being dragged.
type Edge int

const (
	EdgeNone  Edge = iota
	EdgeStart      // Left handle
	EdgeEnd        // Right handle
)

// String returns the string representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	case EdgeNone:
		return "none"
	}
	return "none"
}

// DragMode selects how pointer movement is converted into days.
type DragMode string

const (
	// DragModeDelta applies per-move pixel deltas to the current edge date.
	DragModeDelta DragMode = "delta"
	// DragModeAbsolute maps the total pointer travel since pointer-down
	// onto the edge date captured at pointer-down.
	DragModeAbsolute DragMode = "absolute"
)

// Valid reports whether the mode is known.
func (m DragMode) Valid() bool {
	return m == DragModeDelta || m == DragModeAbsolute
}

// DragSession is the transient state of an in-progress edge drag.
// Fields are ordered to minimize memory padding.
type DragSession struct {
	OriginDate  time.Time // Edge date at pointer-down (absolute mode)
	Task        *Task     // Task being resized
	AnchorX     float64   // Last applied pointer x (delta) or pointer-down x (absolute)
	OriginRatio float64   // Days per surface unit at pointer-down (absolute mode)
	Edge        Edge
	Active      bool
}
