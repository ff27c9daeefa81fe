package tui

import "github.com/runoshun/gantt/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgFrame is delivered once per coalesced redraw request.
type MsgFrame struct{}

func (MsgFrame) sealed() {}

// MsgTaskAdded is sent when the form created a task.
type MsgTaskAdded struct {
	Task *domain.Task
	Row  int
}

func (MsgTaskAdded) sealed() {}

// MsgError is sent when an operation is rejected.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearStatus is sent to clear the status line.
type MsgClearStatus struct{}

func (MsgClearStatus) sealed() {}
